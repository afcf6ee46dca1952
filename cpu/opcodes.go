package cpu

// mnemonic enumerates every documented instruction. Grouped roughly by
// effect, following load/store/transfer/stack/arithmetic/logic/shift/compare/
// increment/flag/branch/jump/system ordering.
type mnemonic int

const (
	mnUndefined mnemonic = iota

	// Load/store.
	mnLDA
	mnLDX
	mnLDY
	mnSTA
	mnSTX
	mnSTY

	// Transfer.
	mnTAX
	mnTAY
	mnTSX
	mnTXA
	mnTYA
	mnTXS

	// Stack.
	mnPHA
	mnPLA
	mnPHP
	mnPLP

	// Arithmetic.
	mnADC
	mnSBC

	// Logical.
	mnAND
	mnORA
	mnEOR

	// Shifts/rotates.
	mnASL
	mnLSR
	mnROL
	mnROR

	// Compare.
	mnCMP
	mnCPX
	mnCPY

	// Bit test.
	mnBIT

	// Inc/dec.
	mnINC
	mnDEC
	mnINX
	mnDEX
	mnINY
	mnDEY

	// Flags.
	mnCLC
	mnSEC
	mnCLD
	mnSED
	mnCLI
	mnSEI
	mnCLV

	// Branches.
	mnBPL
	mnBMI
	mnBVC
	mnBVS
	mnBCC
	mnBCS
	mnBNE
	mnBEQ

	// Jumps & subroutines.
	mnJMP
	mnJSR
	mnRTS
	mnBRK
	mnRTI

	mnNOP
)

// instrKind groups mnemonics by the shape of addressing-mode resolution and
// write-back they need, so Step() can dispatch through one of a handful of
// uniform paths instead of one bespoke function per opcode.
type instrKind int

const (
	kindImplied instrKind = iota // No operand resolution: flag ops, transfers, stack ops, INX/DEX/etc, JMP/JSR/RTS/BRK/RTI.
	kindBranch                   // Relative-mode conditional branches.
	kindLoad                     // Reads an operand (memory or immediate), never writes.
	kindStore                    // Writes a register's value to a resolved address.
	kindRMW                      // Reads a value, computes a new one, writes it back to the same place.
)

// opcodeEntry is the (mnemonic, addressing mode, instruction kind) triple
// attached to each opcode byte: two small enums plus a dispatch tag, rather
// than a deeply nested switch per opcode.
type opcodeEntry struct {
	mnemonic mnemonic
	mode     addrMode
	kind     instrKind
}

// opcodeTable is the dense 256-entry decode table. Slots for undocumented
// opcodes are left at their zero value (mnemonic: mnUndefined), which
// Step() turns into an UndefinedOpcode fault rather than silently running
// them as NOPs.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]opcodeEntry {
	var t [256]opcodeEntry

	reg := func(op uint8, mn mnemonic, mode addrMode, kind instrKind) {
		t[op] = opcodeEntry{mnemonic: mn, mode: mode, kind: kind}
	}

	// LDA
	reg(0xA9, mnLDA, modeImmediate, kindLoad)
	reg(0xA5, mnLDA, modeZP, kindLoad)
	reg(0xB5, mnLDA, modeZPX, kindLoad)
	reg(0xAD, mnLDA, modeAbsolute, kindLoad)
	reg(0xBD, mnLDA, modeAbsoluteX, kindLoad)
	reg(0xB9, mnLDA, modeAbsoluteY, kindLoad)
	reg(0xA1, mnLDA, modeIndirectX, kindLoad)
	reg(0xB1, mnLDA, modeIndirectY, kindLoad)

	// LDX
	reg(0xA2, mnLDX, modeImmediate, kindLoad)
	reg(0xA6, mnLDX, modeZP, kindLoad)
	reg(0xB6, mnLDX, modeZPY, kindLoad)
	reg(0xAE, mnLDX, modeAbsolute, kindLoad)
	reg(0xBE, mnLDX, modeAbsoluteY, kindLoad)

	// LDY
	reg(0xA0, mnLDY, modeImmediate, kindLoad)
	reg(0xA4, mnLDY, modeZP, kindLoad)
	reg(0xB4, mnLDY, modeZPX, kindLoad)
	reg(0xAC, mnLDY, modeAbsolute, kindLoad)
	reg(0xBC, mnLDY, modeAbsoluteX, kindLoad)

	// STA
	reg(0x85, mnSTA, modeZP, kindStore)
	reg(0x95, mnSTA, modeZPX, kindStore)
	reg(0x8D, mnSTA, modeAbsolute, kindStore)
	reg(0x9D, mnSTA, modeAbsoluteX, kindStore)
	reg(0x99, mnSTA, modeAbsoluteY, kindStore)
	reg(0x81, mnSTA, modeIndirectX, kindStore)
	reg(0x91, mnSTA, modeIndirectY, kindStore)

	// STX / STY
	reg(0x86, mnSTX, modeZP, kindStore)
	reg(0x96, mnSTX, modeZPY, kindStore)
	reg(0x8E, mnSTX, modeAbsolute, kindStore)
	reg(0x84, mnSTY, modeZP, kindStore)
	reg(0x94, mnSTY, modeZPX, kindStore)
	reg(0x8C, mnSTY, modeAbsolute, kindStore)

	// Transfers (implied, register to register).
	reg(0xAA, mnTAX, modeImplied, kindImplied)
	reg(0xA8, mnTAY, modeImplied, kindImplied)
	reg(0xBA, mnTSX, modeImplied, kindImplied)
	reg(0x8A, mnTXA, modeImplied, kindImplied)
	reg(0x98, mnTYA, modeImplied, kindImplied)
	reg(0x9A, mnTXS, modeImplied, kindImplied)

	// Stack.
	reg(0x48, mnPHA, modeImplied, kindImplied)
	reg(0x68, mnPLA, modeImplied, kindImplied)
	reg(0x08, mnPHP, modeImplied, kindImplied)
	reg(0x28, mnPLP, modeImplied, kindImplied)

	// ADC
	reg(0x69, mnADC, modeImmediate, kindLoad)
	reg(0x65, mnADC, modeZP, kindLoad)
	reg(0x75, mnADC, modeZPX, kindLoad)
	reg(0x6D, mnADC, modeAbsolute, kindLoad)
	reg(0x7D, mnADC, modeAbsoluteX, kindLoad)
	reg(0x79, mnADC, modeAbsoluteY, kindLoad)
	reg(0x61, mnADC, modeIndirectX, kindLoad)
	reg(0x71, mnADC, modeIndirectY, kindLoad)

	// SBC
	reg(0xE9, mnSBC, modeImmediate, kindLoad)
	reg(0xE5, mnSBC, modeZP, kindLoad)
	reg(0xF5, mnSBC, modeZPX, kindLoad)
	reg(0xED, mnSBC, modeAbsolute, kindLoad)
	reg(0xFD, mnSBC, modeAbsoluteX, kindLoad)
	reg(0xF9, mnSBC, modeAbsoluteY, kindLoad)
	reg(0xE1, mnSBC, modeIndirectX, kindLoad)
	reg(0xF1, mnSBC, modeIndirectY, kindLoad)

	// AND
	reg(0x29, mnAND, modeImmediate, kindLoad)
	reg(0x25, mnAND, modeZP, kindLoad)
	reg(0x35, mnAND, modeZPX, kindLoad)
	reg(0x2D, mnAND, modeAbsolute, kindLoad)
	reg(0x3D, mnAND, modeAbsoluteX, kindLoad)
	reg(0x39, mnAND, modeAbsoluteY, kindLoad)
	reg(0x21, mnAND, modeIndirectX, kindLoad)
	reg(0x31, mnAND, modeIndirectY, kindLoad)

	// ORA
	reg(0x09, mnORA, modeImmediate, kindLoad)
	reg(0x05, mnORA, modeZP, kindLoad)
	reg(0x15, mnORA, modeZPX, kindLoad)
	reg(0x0D, mnORA, modeAbsolute, kindLoad)
	reg(0x1D, mnORA, modeAbsoluteX, kindLoad)
	reg(0x19, mnORA, modeAbsoluteY, kindLoad)
	reg(0x01, mnORA, modeIndirectX, kindLoad)
	reg(0x11, mnORA, modeIndirectY, kindLoad)

	// EOR
	reg(0x49, mnEOR, modeImmediate, kindLoad)
	reg(0x45, mnEOR, modeZP, kindLoad)
	reg(0x55, mnEOR, modeZPX, kindLoad)
	reg(0x4D, mnEOR, modeAbsolute, kindLoad)
	reg(0x5D, mnEOR, modeAbsoluteX, kindLoad)
	reg(0x59, mnEOR, modeAbsoluteY, kindLoad)
	reg(0x41, mnEOR, modeIndirectX, kindLoad)
	reg(0x51, mnEOR, modeIndirectY, kindLoad)

	// ASL
	reg(0x0A, mnASL, modeAccumulator, kindRMW)
	reg(0x06, mnASL, modeZP, kindRMW)
	reg(0x16, mnASL, modeZPX, kindRMW)
	reg(0x0E, mnASL, modeAbsolute, kindRMW)
	reg(0x1E, mnASL, modeAbsoluteX, kindRMW)

	// LSR
	reg(0x4A, mnLSR, modeAccumulator, kindRMW)
	reg(0x46, mnLSR, modeZP, kindRMW)
	reg(0x56, mnLSR, modeZPX, kindRMW)
	reg(0x4E, mnLSR, modeAbsolute, kindRMW)
	reg(0x5E, mnLSR, modeAbsoluteX, kindRMW)

	// ROL
	reg(0x2A, mnROL, modeAccumulator, kindRMW)
	reg(0x26, mnROL, modeZP, kindRMW)
	reg(0x36, mnROL, modeZPX, kindRMW)
	reg(0x2E, mnROL, modeAbsolute, kindRMW)
	reg(0x3E, mnROL, modeAbsoluteX, kindRMW)

	// ROR
	reg(0x6A, mnROR, modeAccumulator, kindRMW)
	reg(0x66, mnROR, modeZP, kindRMW)
	reg(0x76, mnROR, modeZPX, kindRMW)
	reg(0x6E, mnROR, modeAbsolute, kindRMW)
	reg(0x7E, mnROR, modeAbsoluteX, kindRMW)

	// Compares.
	reg(0xC9, mnCMP, modeImmediate, kindLoad)
	reg(0xC5, mnCMP, modeZP, kindLoad)
	reg(0xD5, mnCMP, modeZPX, kindLoad)
	reg(0xCD, mnCMP, modeAbsolute, kindLoad)
	reg(0xDD, mnCMP, modeAbsoluteX, kindLoad)
	reg(0xD9, mnCMP, modeAbsoluteY, kindLoad)
	reg(0xC1, mnCMP, modeIndirectX, kindLoad)
	reg(0xD1, mnCMP, modeIndirectY, kindLoad)
	reg(0xE0, mnCPX, modeImmediate, kindLoad)
	reg(0xE4, mnCPX, modeZP, kindLoad)
	reg(0xEC, mnCPX, modeAbsolute, kindLoad)
	reg(0xC0, mnCPY, modeImmediate, kindLoad)
	reg(0xC4, mnCPY, modeZP, kindLoad)
	reg(0xCC, mnCPY, modeAbsolute, kindLoad)

	// BIT
	reg(0x24, mnBIT, modeZP, kindLoad)
	reg(0x2C, mnBIT, modeAbsolute, kindLoad)

	// INC/DEC memory.
	reg(0xE6, mnINC, modeZP, kindRMW)
	reg(0xF6, mnINC, modeZPX, kindRMW)
	reg(0xEE, mnINC, modeAbsolute, kindRMW)
	reg(0xFE, mnINC, modeAbsoluteX, kindRMW)
	reg(0xC6, mnDEC, modeZP, kindRMW)
	reg(0xD6, mnDEC, modeZPX, kindRMW)
	reg(0xCE, mnDEC, modeAbsolute, kindRMW)
	reg(0xDE, mnDEC, modeAbsoluteX, kindRMW)

	// INX/DEX/INY/DEY.
	reg(0xE8, mnINX, modeImplied, kindImplied)
	reg(0xCA, mnDEX, modeImplied, kindImplied)
	reg(0xC8, mnINY, modeImplied, kindImplied)
	reg(0x88, mnDEY, modeImplied, kindImplied)

	// Flag ops.
	reg(0x18, mnCLC, modeImplied, kindImplied)
	reg(0x38, mnSEC, modeImplied, kindImplied)
	reg(0xD8, mnCLD, modeImplied, kindImplied)
	reg(0xF8, mnSED, modeImplied, kindImplied)
	reg(0x58, mnCLI, modeImplied, kindImplied)
	reg(0x78, mnSEI, modeImplied, kindImplied)
	reg(0xB8, mnCLV, modeImplied, kindImplied)

	// Branches.
	reg(0x10, mnBPL, modeRelative, kindBranch)
	reg(0x30, mnBMI, modeRelative, kindBranch)
	reg(0x50, mnBVC, modeRelative, kindBranch)
	reg(0x70, mnBVS, modeRelative, kindBranch)
	reg(0x90, mnBCC, modeRelative, kindBranch)
	reg(0xB0, mnBCS, modeRelative, kindBranch)
	reg(0xD0, mnBNE, modeRelative, kindBranch)
	reg(0xF0, mnBEQ, modeRelative, kindBranch)

	// Jumps & subroutines & interrupts.
	reg(0x4C, mnJMP, modeAbsolute, kindImplied)
	reg(0x6C, mnJMP, modeIndirect, kindImplied)
	reg(0x20, mnJSR, modeAbsolute, kindImplied)
	reg(0x60, mnRTS, modeImplied, kindImplied)
	reg(0x00, mnBRK, modeImplied, kindImplied)
	reg(0x40, mnRTI, modeImplied, kindImplied)

	// NOP.
	reg(0xEA, mnNOP, modeImplied, kindImplied)

	return t
}
