// Package wasmabi passes uz values across the WebAssembly component model
// canonical ABI.
//
// Every uz type travels as a WIT unsigned integer: bit types use the
// primitive matching their backing width (u8, u16 or u32) and range types
// use u32, since WIT has no pointer-sized integer. On the core side every
// one of those flattens to a single i32 stack slot.
//
// Lifting is always checked. A core value outside the declared type's
// domain is a range violation with phase lift, and a host function built
// with HostFunc traps on it instead of running.
package wasmabi
