// Package cpu implements the documented MOS 6502 instruction set: the
// register file, status flags, addressing-mode evaluator and decode/dispatch
// step function. It executes exactly one instruction per call to Step and
// performs no cycle timing, interrupt vectoring beyond BRK, or undocumented
// opcode emulation.
package cpu

import "fmt"

// Flag is one bit of the P (status) register, laid out NV-BDIZC.
type Flag uint8

// Status register bits, laid out exactly as they sit in P.
const (
	FlagNegative  Flag = 0x80
	FlagOverflow  Flag = 0x40
	FlagUnused    Flag = 0x20 // Always reads 1. Never cleared.
	FlagBreak     Flag = 0x10 // Only meaningful in the byte pushed by BRK/PHP.
	FlagDecimal   Flag = 0x08 // Stored; ADC/SBC ignore it — BCD mode is not implemented.
	FlagInterrupt Flag = 0x04
	FlagZero      Flag = 0x02
	FlagCarry     Flag = 0x01
)

// IRQVector is the little-endian vector BRK loads PC from.
const IRQVector = uint16(0xFFFE)

// stackBase is the fixed page-1 stack window; the effective address of a
// stack access is always stackBase + S.
const stackBase = uint16(0x0100)

// Memory is the host memory contract a Chip is driven against: a total,
// synchronous, 16-bit-addressed byte store. memory.Bank satisfies this
// structurally.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// InvalidCPUState reports a programmer error: an addressing mode or
// instruction combination that a correct opcode table can never produce.
// This is never reachable with a correctly built table, so callers
// should treat it as a bug, not a runtime condition to recover from.
type InvalidCPUState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// UndefinedOpcode reports that Step() fetched a byte outside the documented
// opcode set. This is a fault: the core aborts the step
// rather than silently treating the byte as a NOP.
type UndefinedOpcode struct {
	Opcode uint8
}

// Error implements the error interface.
func (e UndefinedOpcode) Error() string {
	return fmt.Sprintf("undefined opcode 0x%.2X", e.Opcode)
}

// Options configures aspects of Chip behavior that real hardware leaves as
// explicit, documented choices rather than something to guess at.
type Options struct {
	// IFlagOnReset, if true, sets the I (interrupt disable) flag as part of
	// Reset, matching real hardware. The default (false) leaves I clear, to
	// match the reference implementation this core is differentially tested
	// against: real silicon always sets it.
	IFlagOnReset bool
}

// Chip is a single MOS 6502 register file plus the interpreter driving it.
// It is owned exclusively by the caller: Reset and Step are the only
// methods that mutate it, there is no internal concurrency, and multiple
// Chips (each with their own Memory) can run independently with no shared
// state between them.
type Chip struct {
	PC uint16 // Program counter.
	A  uint8  // Accumulator.
	X  uint8  // X index register.
	Y  uint8  // Y index register.
	S  uint8  // Stack pointer (page-1 offset).
	P  uint8  // Status register, NV-BDIZC.

	mem  Memory
	opts Options

	// Scratch state used only within a single Step() call; not part of the
	// architecturally visible register file.
	opAddr    uint16
	opIsAccum bool
}

// New returns a Chip wired to the given host memory, in the undefined state
// that exists between construction and the first Reset. Callers must call
// Reset before Step.
func New(mem Memory, opts Options) *Chip {
	return &Chip{mem: mem, opts: opts}
}

// Reset establishes the documented power-on register state:
// PC is set to the caller-supplied address, A/X/Y are cleared, S is set to
// 0xFD, and P has only the unused bit set (plus I, if Options.IFlagOnReset
// was requested). Reset performs no host reads and does not consult a reset
// vector; the caller picks the entry point directly.
func (c *Chip) Reset(pc uint16) {
	c.PC = pc
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P = uint8(FlagUnused)
	if c.opts.IFlagOnReset {
		c.P |= uint8(FlagInterrupt)
	}
}

// Step fetches, decodes and executes exactly one instruction at PC,
// advancing all registers accordingly. It returns UndefinedOpcode if the
// fetched byte isn't in the documented opcode table, or InvalidCPUState if
// an internal precondition is violated (a bug in this package, not in the
// program being executed). Host reads/writes happen in the strict order
// a real 6502 follows: opcode fetch, then addressing-mode operand
// fetch(es), then the instruction's effect (at most one write, except for
// the stack pushes of JSR, which writes two bytes, and BRK, which writes three).
func (c *Chip) Step() error {
	op := c.mem.Read(c.PC)
	c.PC++

	entry := opcodeTable[op]
	if entry.mnemonic == mnUndefined {
		return UndefinedOpcode{Opcode: op}
	}

	c.opAddr = 0
	c.opIsAccum = false

	switch entry.kind {
	case kindImplied:
		return c.execImplied(entry.mnemonic, entry.mode)
	case kindBranch:
		return c.execBranch(entry.mnemonic)
	case kindLoad:
		val, err := c.resolveRead(entry.mode)
		if err != nil {
			return err
		}
		return c.execLoad(entry.mnemonic, val)
	case kindStore:
		val, err := c.storeValue(entry.mnemonic)
		if err != nil {
			return err
		}
		addr, err := c.resolveAddr(entry.mode)
		if err != nil {
			return err
		}
		c.mem.Write(addr, val)
		return nil
	case kindRMW:
		addr, val, err := c.resolveRMW(entry.mode)
		if err != nil {
			return err
		}
		result, err := c.execRMW(entry.mnemonic, val)
		if err != nil {
			return err
		}
		if c.opIsAccum {
			c.A = result
		} else {
			c.mem.Write(addr, result)
		}
		return nil
	}
	return InvalidCPUState{Reason: fmt.Sprintf("opcode 0x%.2X has no instruction kind", op)}
}

// flagSet reports whether every bit in f is currently set in P.
func (c *Chip) flagSet(f Flag) bool {
	return c.P&uint8(f) == uint8(f)
}

// setFlag sets or clears f in P depending on cond.
func (c *Chip) setFlag(f Flag, cond bool) {
	if cond {
		c.P |= uint8(f)
	} else {
		c.P &^= uint8(f)
	}
}

// setNZ sets the N and Z flags from the final 8-bit value written to a
// register or memory location.
func (c *Chip) setNZ(result uint8) {
	c.setFlag(FlagZero, result == 0)
	c.setFlag(FlagNegative, result&0x80 != 0)
}

// setCarryFromResult sets C iff an 8-bit ALU result (computed in a 16-bit
// accumulator to catch the carry-out) reached or exceeded 0x100.
func (c *Chip) setCarryFromResult(res uint16) {
	c.setFlag(FlagCarry, res >= 0x100)
}

// setOverflow sets V iff adding/subtracting arg into reg produced a result
// whose sign disagrees with both operands' shared sign — the textbook
// signed-overflow test for ADC/SBC.
func (c *Chip) setOverflow(reg, arg, res uint8) {
	c.setFlag(FlagOverflow, (reg^res)&(arg^res)&0x80 != 0)
}

// push writes val to the stack and predecrements S.
func (c *Chip) push(val uint8) {
	c.mem.Write(stackBase+uint16(c.S), val)
	c.S--
}

// pop postincrements S and returns the byte now at the top of stack.
func (c *Chip) pop() uint8 {
	c.S++
	return c.mem.Read(stackBase + uint16(c.S))
}

// pushPC pushes PC's high byte then low byte, the order every subroutine/
// interrupt entry on the 6502 uses.
func (c *Chip) pushPC() {
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC))
}

// popPC pops low byte then high byte and returns the reassembled address.
func (c *Chip) popPC() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(hi)<<8 | uint16(lo)
}
