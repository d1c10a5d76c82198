package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"gochip8/pkg/cpu"
	"gochip8/pkg/peripherals"
	"gochip8/pkg/utils"
)

type Game struct {
	vm     *cpu.CPU
	cfg    *Config
	screen *ebiten.Image // reused 64×32 canvas
	keys   []ebiten.Key
	status string
}

func NewGame(vm *cpu.CPU, cfg *Config) *Game {
	return &Game{vm: vm, cfg: cfg}
}

// handleKeys forwards this frame's key edges to the keypad.
func (g *Game) handleKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if code, ok := hostCode(k); ok {
			g.vm.HostKeyDown(code)
		}
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if code, ok := hostCode(k); ok {
			g.vm.HostKeyUp(code)
		}
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		if err := g.vm.SaveScreenshot(g.cfg.Screenshot, g.cfg.Scale); err != nil {
			log.Println(err)
		} else {
			log.Printf("screenshot saved to %s", g.cfg.Screenshot)
		}
	}

	g.handleKeys()

	if err := g.vm.RunFrame(g.cfg.Cycles); err != nil {
		return errors.Wrap(err, "machine halted")
	}

	g.status = ""
	if g.vm.Waiting {
		g.status = fmt.Sprintf("waiting for key (V%X)", g.vm.WaitRegister)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	fresh := g.screen == nil
	if fresh {
		g.screen = ebiten.NewImage(cpu.ScreenWidth, cpu.ScreenHeight)
	}

	if fresh || g.vm.Screen.Dirty() {
		g.screen.WritePixels(g.vm.FramebufferRGBA())
		g.vm.Screen.ClearDirty()
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cfg.Scale), float64(g.cfg.Scale))
	screen.DrawImage(g.screen, op)

	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, 2, 2)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cpu.ScreenWidth * g.cfg.Scale, cpu.ScreenHeight * g.cfg.Scale
}

func main() {
	cfg := parseArgs()

	rom, err := utils.ReadROM(cfg.ROM)
	if err != nil {
		log.Fatalf("Failed to load ROM: %v", err)
	}

	var vm *cpu.CPU
	if cfg.Seed != 0 {
		vm = cpu.NewCPU(cfg.Seed)
	} else {
		vm = cpu.NewCPU()
	}
	if err := vm.Load(rom); err != nil {
		log.Fatalf("Failed to load ROM: %v", err)
	}
	vm.Keyboard.SetMapping(layouts[cfg.Layout])
	vm.MountBuzzer(peripherals.NewLogBuzzer(nil))
	if cfg.Trace {
		vm.Trace = func(pc uint16, in cpu.Instruction) {
			log.Printf("%03X  %04X  %s", pc, in.Raw, in)
		}
	}
	log.Printf("loaded %s (%d bytes, seed %d)", cfg.ROM, len(rom), vm.Seed())

	ebiten.SetWindowSize(cpu.ScreenWidth*cfg.Scale, cpu.ScreenHeight*cfg.Scale)
	ebiten.SetWindowTitle("Chip8 Window")

	if err := ebiten.RunGame(NewGame(vm, cfg)); err != nil {
		log.Fatal(err)
	}
}
