// Package script drives a chain.Chain from text commands, one per line:
//
//	insert <value> [position]
//	append <value>
//	delete <position>
//	get <position>
//	len | print | sorted | clear | check
//
// Each line is parsed into a rop.Result[Command] and applied through the
// solo pipeline. Out-of-bounds inserts and deletes are reported as failed
// lines instead of crashing the session.
package script
