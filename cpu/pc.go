package cpu

// PcState is the program counter unit state.
type PcState int

//go:generate go tool stringer -linecomment -type=PcState
const (
	PC_HELD    = PcState(0) // held
	PC_RUNNING = PcState(1) // running
)

// ProgramCounter is the 8-bit synchronous program counter.
type ProgramCounter struct {
	Value uint8   // Address of the next instruction.
	State PcState // Held in reset, or running.
}

// Clock advances the program counter by one clock edge.
//   - While reset is asserted the counter is forced to zero and held.
//   - The first edge after release only re-arms the counter.
//   - Every following edge increments it, modulo 256.
func (pc *ProgramCounter) Clock(reset bool) {
	switch {
	case reset:
		pc.Value = 0
		pc.State = PC_HELD
	case pc.State == PC_HELD:
		pc.State = PC_RUNNING
	default:
		pc.Value++
	}
}

// Running returns true if the counter will advance on the next edge.
func (pc *ProgramCounter) Running() bool {
	return pc.State == PC_RUNNING
}
