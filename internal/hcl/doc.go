// Package hcl provides the HCL implementation of config.Loader.
//
// A config file is a flat list of optional attributes:
//
//	sum        = 2000 + 20
//	file       = "${env.HOME}/aoc/input.txt"
//	solvers    = ["indexed"]
//	log_level  = "debug"
//	log_format = "json"
//
// Expressions see the process environment as the object `env` and a small
// set of functions (abs, min, max, format, lower, upper). A relative `file`
// is resolved against the directory of the config file.
package hcl
