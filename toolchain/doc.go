// Package toolchain parses textual actions and dispatches them to registered tools.
//
// # Overview
//
// The toolchain is responsible for:
//  1. Parsing the text inside an <action> tag into a tool name and ordered string arguments
//  2. Looking the tool up in a fixed [Registry]
//  3. Executing the tool and normalising its failure into reactagent error types
//
// # Action Grammar
//
//	identifier
//	identifier(arg[, arg]*)
//
// Each arg is either an unquoted run of characters (trimmed) or a single- or double-quoted string.
// Quote characters are not part of the value, and a comma inside quotes does not split:
//
//	get_current_time                      -> get_current_time []
//	get_current_time()                    -> get_current_time []
//	write_to_file("a/b.txt", "x, y")      -> write_to_file ["a/b.txt" "x, y"]
//	calculate(1 + 2, 3)                   -> calculate ["1 + 2" "3"]
//
// An unquoted comma always splits, even inside what looks like one logical expression. Escaped
// quotes are not supported: a quote character inside quotes always closes the quote. Literal
// backslash sequences such as \n are preserved as-is; tools decide how to interpret them.
//
// # Registry
//
//	registry, err := toolchain.NewRegistry(tools.Builtins(scratchDir)...)
//	result, err := registry.Execute(ctx, `calculate("6 * 7")`)
//
// The registry is built once and never mutated. Lookup is a plain map access.
package toolchain
