// Package server provides the Prometheus metrics endpoint used by
// watch mode. All other surfaces of the tool are command driven; only
// metrics warrant a listening socket.
package server
