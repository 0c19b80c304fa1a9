// Package rop defines Result[T], the success-or-failure value threaded
// through the script pipeline. Each result is stamped with a uuid and a UTC
// creation time so a reported outcome can be traced back to its step.
package rop
