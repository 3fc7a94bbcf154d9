package cpu

// The stack lives in memory below the stack pointer (R7), growing down
// from SP_INIT. SP always addresses the most recently pushed byte.

// Push decrements the stack pointer, and writes value to the new top of stack.
func (cpu *Cpu) Push(value uint8) {
	cpu.Register[REG_SP]--
	cpu.Memory.Write(cpu.Register[REG_SP], value)
}

// Pop reads the top of stack, and increments the stack pointer.
func (cpu *Cpu) Pop() (value uint8) {
	value = cpu.Memory.Read(cpu.Register[REG_SP])
	cpu.Register[REG_SP]++
	return
}

// Peek returns the top of stack without moving the stack pointer.
func (cpu *Cpu) Peek() uint8 {
	return cpu.Memory.Read(cpu.Register[REG_SP])
}

// Depth returns the number of bytes pushed since reset.
// The result is negative if more bytes were popped than pushed.
func (cpu *Cpu) Depth() int {
	return SP_INIT - int(cpu.Register[REG_SP])
}

// pushRegister pushes a register. The register is read after the stack
// pointer is decremented, so PUSH R7 stores the new stack pointer.
func (cpu *Cpu) pushRegister(reg uint8) (err error) {
	_, err = cpu.Register.Get(reg)
	if err != nil {
		return
	}

	cpu.Register[REG_SP]--
	cpu.Memory.Write(cpu.Register[REG_SP], cpu.Register[reg])

	return
}

// popRegister pops into a register. The stack pointer is incremented
// after the register is written, so POP R7 adjusts the popped value.
func (cpu *Cpu) popRegister(reg uint8) (err error) {
	_, err = cpu.Register.Get(reg)
	if err != nil {
		return
	}

	cpu.Register[reg] = cpu.Memory.Read(cpu.Register[REG_SP])
	cpu.Register[REG_SP]++

	return
}
