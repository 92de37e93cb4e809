/*
Package application holds what every porep-go executable shares.

Config

This module implements the plotter configuration: the plot directory,
the optional catalog database, the tree shape and the compression
function, encoded in TOML.

Logger

This module implements a generic logging system that can be used by any
porep-go component or executable.
*/
package application
