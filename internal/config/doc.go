// Package config defines the format-agnostic model of a pairsum config file
// and the Loader interface that reads one.
//
// Every field of Model is optional. A nil pointer or empty slice means the
// file did not set it and the command-line default applies. Concrete
// loaders, such as the HCL one, live in separate packages.
package config
