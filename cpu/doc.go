// Package cpu implements the LS-8 microcomputer and its assembler.
//
// The LS-8 is an 8-bit machine: 256 bytes of RAM, eight general-purpose
// byte registers (R5 is the interrupt mask, R6 the interrupt status, R7
// the stack pointer), a flags register set by CMP, and a vectored
// interrupt mechanism checked once per instruction boundary. The upper
// two bits of every opcode encode its operand count.
//
// The assembler provides a small assembly language for the LS-8
// instruction set, supporting labels, equates, data bytes, and
// compile-time expression evaluation.
package cpu
