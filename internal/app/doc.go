// Package app contains the core application logic. It defines the App
// struct, its configuration, and the run lifecycle (load values, run each
// solver under a stopwatch, print the report), decoupled from any specific
// entrypoint like a CLI.
package app
