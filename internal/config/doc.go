// Package config defines the format-agnostic configuration model for the
// exporters: named profiles that tell the engine how to read one kind of
// source file, along with the Loader interface implemented by concrete
// formats such as HCL.
//
// Three profiles are built in (forum, issues, flows). Profiles loaded from
// files are merged over them by name, so a file can both tune a built-in
// profile and declare new ones.
package config
