// Package echo renders the command and file-system echo lines that
// execkit prints to stderr before performing an operation.
//
// Echoing is on by default and suppressed globally by setting the
// NO_ECHO environment variable to any value. The variable is read on
// every call, so toggling it mid-program takes effect immediately.
//
// A pipeline echo line looks like:
//
//	 execkit:cmd cd: /tmp env: LANG=C grep 'a b' | sort
//
// with the prefix dimmed, connectors in magenta, programs in bold cyan
// and arguments bold underlined when stderr is a terminal. Arguments
// are quoted for display only; see Quote.
package echo
