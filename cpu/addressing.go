package cpu

// addrMode is one of the thirteen 6502 addressing modes.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZP
	modeZPX
	modeZPY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
	modeRelative
)

// resolveAddr returns the effective address for a write-destination mode
// (store and RMW instructions), advancing PC past every operand byte the
// mode consumes. It never reads the operand's underlying value or issues a
// write itself — that's the caller's job once it has the address.
//
// Collapsed from a dozen near-identical per-mode helper functions into a single pass
// so reads and read-modify-writes share one addressing path;
// every wrap-around rule those functions encode is preserved here.
func (c *Chip) resolveAddr(mode addrMode) (uint16, error) {
	switch mode {
	case modeZP:
		addr := uint16(c.mem.Read(c.PC))
		c.PC++
		return addr, nil
	case modeZPX:
		return c.zpIndexed(c.X), nil
	case modeZPY:
		return c.zpIndexed(c.Y), nil
	case modeAbsolute:
		return c.readAbsolute(), nil
	case modeAbsoluteX:
		return c.readAbsolute() + uint16(c.X), nil
	case modeAbsoluteY:
		return c.readAbsolute() + uint16(c.Y), nil
	case modeIndirectX:
		return c.readIndirectX(), nil
	case modeIndirectY:
		return c.readIndirectY(), nil
	case modeIndirect:
		return c.readIndirect(), nil
	}
	return 0, InvalidCPUState{Reason: "resolveAddr called with a non-address mode"}
}

// resolveRead returns the operand value for a read-only (load-class)
// instruction: immediate and accumulator modes yield their value directly;
// every other mode resolves an address first and reads through it.
func (c *Chip) resolveRead(mode addrMode) (uint8, error) {
	switch mode {
	case modeImmediate:
		val := c.mem.Read(c.PC)
		c.PC++
		return val, nil
	case modeAccumulator:
		c.opIsAccum = true
		return c.A, nil
	case modeImplied:
		return 0, nil
	}
	addr, err := c.resolveAddr(mode)
	if err != nil {
		return 0, err
	}
	c.opAddr = addr
	return c.mem.Read(addr), nil
}

// resolveRMW resolves both the address (or the accumulator tag) and the
// current value for a read-modify-write instruction (ASL, LSR, ROL, ROR,
// INC, DEC), so the caller can compute a new value and write it back to the
// exact same place.
func (c *Chip) resolveRMW(mode addrMode) (uint16, uint8, error) {
	if mode == modeAccumulator {
		c.opIsAccum = true
		return 0, c.A, nil
	}
	addr, err := c.resolveAddr(mode)
	if err != nil {
		return 0, 0, err
	}
	return addr, c.mem.Read(addr), nil
}

// zpIndexed implements zero-page,X and zero-page,Y: the index is added
// modulo 256, so the effective address never leaves page 0 no matter how
// large reg or the base byte are.
func (c *Chip) zpIndexed(reg uint8) uint16 {
	base := c.mem.Read(c.PC)
	c.PC++
	return uint16(base + reg)
}

// readAbsolute reads a little-endian 16-bit address at PC and advances PC
// past both bytes.
func (c *Chip) readAbsolute() uint16 {
	lo := c.mem.Read(c.PC)
	c.PC++
	hi := c.mem.Read(c.PC)
	c.PC++
	return uint16(hi)<<8 | uint16(lo)
}

// readIndirectX implements (d,x): the pointer is built from two zero-page
// bytes at (d+X) and (d+X+1), both wrapping within page 0.
func (c *Chip) readIndirectX() uint16 {
	ptr := uint8(c.mem.Read(c.PC) + c.X)
	c.PC++
	lo := c.mem.Read(uint16(ptr))
	hi := c.mem.Read(uint16(ptr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// readIndirectY implements (d),y: the pointer is read from zero page at d
// and d+1 (wrapping within page 0), then Y is added to the 16-bit result,
// which may legitimately cross a page boundary.
func (c *Chip) readIndirectY() uint16 {
	ptr := c.mem.Read(c.PC)
	c.PC++
	lo := c.mem.Read(uint16(ptr))
	hi := c.mem.Read(uint16(ptr + 1))
	base := uint16(hi)<<8 | uint16(lo)
	return base + uint16(c.Y)
}

// readIndirect implements JMP's indirect mode: the pointer is read as an
// absolute address at PC, and the target is the little-endian word stored
// there. The real 6502's page-boundary bug (a pointer ending in 0xFF reads
// its high byte from the wrong page) is deliberately not emulated; nothing
// in this design depends on reproducing it.
func (c *Chip) readIndirect() uint16 {
	ptr := c.readAbsolute()
	lo := c.mem.Read(ptr)
	hi := c.mem.Read(ptr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// relativeTarget computes a branch's target PC from the displacement byte
// and the PC value immediately after that byte, using explicit signed 8-bit
// sign extension before the 16-bit addition (an explicit choice:
// the original source relies on implicit C sign-extension rules that a
// strongly typed rewrite must make explicit).
func relativeTarget(pcAfterOperand uint16, disp uint8) uint16 {
	return uint16(int32(pcAfterOperand) + int32(int8(disp)))
}
