package asm

import (
	"strings"
	"testing"
)

// smallProgram counts V0 down from 10 while accumulating into V1.
const smallProgram = `
    LD V0, 10
    LD V1, 0
loop:
    ADD V1, V0
    ADD V0, 0xFF
    SE V0, 0
    JP loop
halt:
    JP halt
`

// mediumProgram draws the hex digits across the screen with subroutines
// and sprite data.
const mediumProgram = `
    JP main

; draw_digit draws the glyph for V2 at (V0, V1) and advances V0.
draw_digit:
    LD F, V2
    DRW V0, V1, 5
    ADD V0, 5
    RET

; next_row moves to the start of the next text row.
next_row:
    LD V0, 0
    ADD V1, 6
    RET

main:
    CLS
    LD V0, 0
    LD V1, 0
    LD V2, 0
digit_loop:
    CALL draw_digit
    ADD V2, 1
    SNE V0, 60
    CALL next_row
    SE V2, 16
    JP digit_loop

    LD I, smiley
    LD V3, 28
    LD V4, 24
    DRW V3, V4, 6

    LD I, score
    LD V5, 156
    LD B, V5
    LD V2, [I]
    LD V6, K
    SKP V6
    JP main
wait:
    LD V7, DT
    SE V7, 0
    JP wait
    LD V7, 30
    LD DT, V7
    LD ST, V7
    JP main

smiley:
    .BYTE 0x3C, 0x42, 0xA5, 0x81, 0xA5, 0x99
score:
    .BYTE 0, 0, 0
`

// largeProgram repeats the medium program body under unique labels.
var largeProgram = func() string {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		body := strings.NewReplacer(
			"draw_digit", "draw_digit_"+string(rune('a'+i)),
			"next_row", "next_row_"+string(rune('a'+i)),
			"main", "main_"+string(rune('a'+i)),
			"digit_loop", "digit_loop_"+string(rune('a'+i)),
			"smiley", "smiley_"+string(rune('a'+i)),
			"score", "score_"+string(rune('a'+i)),
			"wait", "wait_"+string(rune('a'+i)),
		).Replace(mediumProgram)
		b.WriteString(body)
	}
	return b.String()
}()

func BenchmarkAssemble_Small(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, err := Assemble(smallProgram)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAssemble_Medium(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, err := Assemble(mediumProgram)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAssemble_Large(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, err := Assemble(largeProgram)
		if err != nil {
			b.Fatal(err)
		}
	}
}
