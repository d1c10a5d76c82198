package cpu

import "testing"

// fillProgram writes count copies of w from ProgramStart and ends with a
// jump-to-self so RunCycles has something to spin on.
func fillProgram(c *CPU, count int, w uint16) {
	addr := ProgramStart
	for j := 0; j < count; j++ {
		w16(c, addr, w)
		addr += 2
	}
	w16(c, addr, EncodeInstruction(OpJP, 0, 0, uint16(addr)))
	c.PC = ProgramStart
}

// BenchmarkCPU_Dispatch measures the raw fetch/decode overhead of Step on a
// block of LD Vx, byte instructions.
func BenchmarkCPU_Dispatch(b *testing.B) {
	const count = 1000
	c := NewCPU(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fillProgram(c, count, EncodeInstruction(OpLDImm, 1, 0, 0x42))
		c.RunCycles(count)
	}
}

// BenchmarkCPU_ALU_ADD measures 8xy4 throughput, including the carry flag.
func BenchmarkCPU_ALU_ADD(b *testing.B) {
	const count = 1000
	c := NewCPU(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fillProgram(c, count, EncodeInstruction(OpADDReg, 1, 2, 0))
		c.V[2] = 3
		c.RunCycles(count)
	}
}

// BenchmarkCPU_Call_Ret measures CALL + RET round-trip overhead. The
// subroutine at 0x800 immediately returns.
func BenchmarkCPU_Call_Ret(b *testing.B) {
	const count = 500
	c := NewCPU(1)
	w16(c, 0x800, EncodeInstruction(OpRET, 0, 0, 0))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fillProgram(c, count, EncodeInstruction(OpCALL, 0, 0, 0x800))
		c.RunCycles(count * 2)
	}
}

// BenchmarkCPU_DRW measures full-height sprite drawing with the font glyphs.
func BenchmarkCPU_DRW(b *testing.B) {
	const count = 1000
	c := NewCPU(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fillProgram(c, count, EncodeInstruction(OpDRW, 1, 2, GlyphHeight))
		c.I = 0
		c.RunCycles(count)
	}
}

// BenchmarkCPU_FramebufferRGBA measures conversion of the screen to pixels.
func BenchmarkCPU_FramebufferRGBA(b *testing.B) {
	c := NewCPU(1)
	for i := 0; i < ScreenWidth; i += 8 {
		c.Screen.DrawSprite(i, i/2, font[:GlyphHeight], GlyphHeight)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.FramebufferRGBA()
	}
}
