// Package disassemble renders one instruction at a time as text, driven off
// the exact opcode table cpu.Chip dispatches from. It never interprets the
// instruction stream itself: a JMP target is never followed, and data bytes
// that merely happen to look like an opcode are rendered as an instruction
// all the same.
package disassemble

import (
	"fmt"

	"github.com/mattfield/go6502/cpu"
)

// Step disassembles the instruction at pc and returns its text plus the
// number of bytes (opcode included) to advance pc to reach the next
// instruction. It always reads the two bytes after pc speculatively (for
// operand formatting), even for one- and two-byte instructions.
func Step(pc uint16, mem cpu.Memory) (string, int) {
	op := mem.Read(pc)
	operand1 := mem.Read(pc + 1)
	operand2 := mem.Read(pc + 2)

	d := cpu.Lookup(op)
	if !d.Defined {
		return fmt.Sprintf("%.4X %.2X      %s        ", pc, op, "UNDEFINED"), 1
	}

	length := 1 + d.Mode.OperandLen()
	operand := formatOperand(d.Mode, pc, operand1, operand2)
	return fmt.Sprintf("%.4X %.2X %s %s %s", pc, op, operandBytes(d.Mode, operand1, operand2), d.Name, operand), length
}

// operandBytes renders the raw operand bytes a given mode consumes, padded
// to a fixed column width so traces line up regardless of instruction length.
func operandBytes(mode cpu.Mode, operand1, operand2 uint8) string {
	switch mode.OperandLen() {
	case 0:
		return "     "
	case 1:
		return fmt.Sprintf("%.2X   ", operand1)
	default:
		return fmt.Sprintf("%.2X %.2X", operand1, operand2)
	}
}

// formatOperand renders the operand text for mode following 6502 assembler
// convention ($ for hex, # for immediate, indexed/indirect suffixes).
func formatOperand(mode cpu.Mode, pc uint16, operand1, operand2 uint8) string {
	switch mode {
	case cpu.ModeImplied, cpu.ModeAccumulator:
		return ""
	case cpu.ModeImmediate:
		return fmt.Sprintf("#$%.2X", operand1)
	case cpu.ModeZP:
		return fmt.Sprintf("$%.2X", operand1)
	case cpu.ModeZPX:
		return fmt.Sprintf("$%.2X,X", operand1)
	case cpu.ModeZPY:
		return fmt.Sprintf("$%.2X,Y", operand1)
	case cpu.ModeIndirectX:
		return fmt.Sprintf("($%.2X,X)", operand1)
	case cpu.ModeIndirectY:
		return fmt.Sprintf("($%.2X),Y", operand1)
	case cpu.ModeAbsolute:
		return fmt.Sprintf("$%.2X%.2X", operand2, operand1)
	case cpu.ModeAbsoluteX:
		return fmt.Sprintf("$%.2X%.2X,X", operand2, operand1)
	case cpu.ModeAbsoluteY:
		return fmt.Sprintf("$%.2X%.2X,Y", operand2, operand1)
	case cpu.ModeIndirect:
		return fmt.Sprintf("($%.2X%.2X)", operand2, operand1)
	case cpu.ModeRelative:
		target := uint16(int32(pc) + 2 + int32(int8(operand1)))
		return fmt.Sprintf("$%.2X ($%.4X)", operand1, target)
	default:
		return ""
	}
}
