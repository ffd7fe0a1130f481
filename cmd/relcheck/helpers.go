package main

// silentErr wraps an error whose message has already been rendered to
// the user. Execute skips printing it but still maps it to an exit
// code.
type silentErr struct{ error }

func (e silentErr) Unwrap() error { return e.error }
