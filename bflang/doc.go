// Package bflang parses brainfuck source into validated programs.
//
// The eight tokens > < + - . , [ ] each become one Instruction; every other
// byte is a comment. Loop brackets are matched with a single stack-based
// pass and each jump instruction carries the resolved index of its partner,
// so executors never scan for brackets at run time.
package bflang
