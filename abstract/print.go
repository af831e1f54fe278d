package abstract

import "strings"

// Sprint renders the subtree rooted at n as a 2D grid, one row per node
// level with "/" and "\" connector rows between them. Node positions are
// laid out as for a perfect tree of the subtree's height, so the render
// grows exponentially with height; callers cap the size.
func Sprint[T Ordered, N Binary[T, N]](n N) string {
	var nilNode N
	if n == nilNode {
		return ""
	}

	height := int(Height[T, N](n))
	rows := height*2 - 1
	// The last row of a perfect tree needs 3 columns per node plus one.
	width := (2<<(height-2))*3 + 1

	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, width)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}

	place[T, N](n, 0, width/2, grid, height)

	var b strings.Builder
	for i, row := range grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimRight(strings.Join(row, ""), " "))
	}
	return b.String()
}

func place[T Ordered, N Binary[T, N]](n N, row, col int, grid [][]string, height int) {
	grid[row][col] = n.Label()

	cur := (row + 1) / 2
	if cur >= height {
		return
	}
	gap := height - cur - 1

	var nilNode N
	if l := n.Left(); l != nilNode {
		grid[row+1][col-gap] = "/"
		place[T, N](l, row+2, col-gap*2, grid, height)
	}
	if r := n.Right(); r != nilNode {
		grid[row+1][col+gap] = "\\"
		place[T, N](r, row+2, col+gap*2, grid, height)
	}
}
