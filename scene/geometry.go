package scene

import "fmt"

// MaxChunkSegments keeps a chunk's vertex count addressable by 16-bit indices:
// (254+1)^2 = 65025 <= 65535.
const MaxChunkSegments = 254

// PlaneGeometry is a subdivided rectangle centered on the origin in the local XY plane.
type PlaneGeometry struct {
	Width, Height        float64
	SegmentsW, SegmentsH int
}

// VertexCount returns the number of grid vertices.
func (g PlaneGeometry) VertexCount() int {
	return (g.SegmentsW + 1) * (g.SegmentsH + 1)
}

// TriangleCount returns the number of triangles (two per cell).
func (g PlaneGeometry) TriangleCount() int {
	return 2 * g.SegmentsW * g.SegmentsH
}

// CellSize returns the size of one grid cell.
func (g PlaneGeometry) CellSize() (w, h float64) {
	return g.Width / float64(g.SegmentsW), g.Height / float64(g.SegmentsH)
}

// Chunk is a rectangular tile of a plane, uploaded as its own mesh.
type Chunk struct {
	Col, Row         int
	SegmentsW        int
	SegmentsH        int
	Width, Height    float64
	CenterX, CenterY float64 // offset of the tile center from the plane center
}

// VertexCount returns the number of vertices of the tile.
func (c Chunk) VertexCount() int {
	return (c.SegmentsW + 1) * (c.SegmentsH + 1)
}

// TriangleCount returns the number of triangles of the tile.
func (c Chunk) TriangleCount() int {
	return 2 * c.SegmentsW * c.SegmentsH
}

// Chunks splits the plane into tiles of at most maxSegments per side.
// Segments are distributed as evenly as possible, and tiles cover the plane
// exactly with shared edges.
func (g PlaneGeometry) Chunks(maxSegments int) ([]Chunk, error) {
	if g.SegmentsW < 1 || g.SegmentsH < 1 {
		return nil, fmt.Errorf("plane needs at least one segment per side, got %dx%d", g.SegmentsW, g.SegmentsH)
	}
	if maxSegments < 1 || maxSegments > MaxChunkSegments {
		maxSegments = MaxChunkSegments
	}

	cols := split(g.SegmentsW, maxSegments)
	rows := split(g.SegmentsH, maxSegments)
	cellW, cellH := g.CellSize()

	chunks := make([]Chunk, 0, len(cols)*len(rows))
	startY := 0
	for r, segH := range rows {
		startX := 0
		for c, segW := range cols {
			chunks = append(chunks, Chunk{
				Col:       c,
				Row:       r,
				SegmentsW: segW,
				SegmentsH: segH,
				Width:     float64(segW) * cellW,
				Height:    float64(segH) * cellH,
				CenterX:   -g.Width/2 + (float64(startX)+float64(segW)/2)*cellW,
				CenterY:   g.Height/2 - (float64(startY)+float64(segH)/2)*cellH,
			})
			startX += segW
		}
		startY += segH
	}
	return chunks, nil
}

// split divides n segments into ceil(n/max) near-equal parts.
func split(n, max int) []int {
	parts := (n + max - 1) / max
	base := n / parts
	rem := n % parts
	out := make([]int, parts)
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}
