package mapart

import (
	"fmt"
	"strings"
)

// World position of grid cell (0, 0) on the paint layer. The receiving
// structure in the world is built around these coordinates.
const (
	OriginX = -3392
	OriginY = 140
	OriginZ = -1600
)

// Script is the assembled command text for one image.
type Script struct {
	Text        string
	Grid        *Grid
	Base        string
	Name        string
	Transparent bool
	Ops         int // placements after the preamble
}

// Lines splits the script text into its lines.
func (s *Script) Lines() []string {
	return strings.Split(strings.TrimSuffix(s.Text, "\n"), "\n")
}

// Preamble switches the runtime to fast mode, resets the whole map area to
// base one layer below and on the paint layer, then announces the build.
func Preamble(name, base string) string {
	var b strings.Builder
	b.WriteString("@fast\n")
	fmt.Fprintf(&b, "@bypass /fill %d %d %d %d %d %d %s\n",
		OriginX, OriginY-1, OriginZ,
		OriginX+GridSize-1, OriginY, OriginZ+GridSize-1,
		base)
	fmt.Fprintf(&b, `@bypass /tellraw {{player}} ["",{"text":"Successfully built map art from ","color":"dark_green"},{"text":"%s","color":"blue"},{"text":"!","color":"dark_green"}]`+"\n", name)
	return b.String()
}

// epilogue moves the player to a viewpoint away from the hub, copies the
// map into the overlay structure next to it, hands over the rendered map and
// returns the player. Transparent cells do not render while the player is
// standing at the hub.
var epilogue = []string{
	`@bypass /tellraw {{player}} ["",{"text":"Hold still, this will only take a second...","color":"dark_green"}]`,
	fmt.Sprintf("@bypass /teleport {{player}} %.1f %.1f %.1f 180 20", OriginX+191.5, float64(OriginY+2), OriginZ+67.5),
	cloneLayer(OriginY - 1),
	cloneLayer(OriginY),
	"@bypass /item replace entity {{player}} weapon.mainhand with minecraft:filled_map{map:12372}",
	"@delay 20",
	fmt.Sprintf("@bypass /teleport {{player}} %.1f %.1f %.1f 180 20", OriginX+63.5, float64(OriginY-21), OriginZ+67.5),
}

// cloneLayer copies one layer of the map area to the overlay one map-width
// east of it.
func cloneLayer(y int) string {
	return fmt.Sprintf("@bypass /clone %d %d %d %d %d %d %d %d %d",
		OriginX, y, OriginZ,
		OriginX+GridSize-1, y, OriginZ+GridSize-1,
		OriginX+GridSize, y, OriginZ)
}

// Epilogue returns the block appended to scripts that contain transparency,
// including its leading blank line.
func Epilogue() string {
	return "\n" + strings.Join(epilogue, "\n")
}

// Assemble renders grid as a script. base must already be validated; runs
// of base are left to the preamble's fill. The epilogue is appended when the
// grid has a transparent cell, unless nothing was placed after the preamble.
func Assemble(name, base string, grid *Grid) *Script {
	var b strings.Builder
	b.WriteString(Preamble(name, base))
	s := &Script{Grid: grid, Base: base, Name: name}
	for z := range GridSize {
		ops, transparent := EncodeRow(z, grid.Row(z), base)
		for _, op := range ops {
			b.WriteString(op.String())
			b.WriteByte('\n')
		}
		s.Ops += len(ops)
		s.Transparent = s.Transparent || transparent
	}
	if s.Transparent && s.Ops > 0 {
		b.WriteString(Epilogue())
	}
	s.Text = b.String()
	return s
}
