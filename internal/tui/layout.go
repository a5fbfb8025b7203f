package tui

const (
	descriptionPrefix = "Description: "
	examplePrefix     = "Example: "
)

// spacers splits free rows around the main term; a positive weight means more
// rows below the term, so more of the free space goes on top.
func spacers(free, weight int) (top, bottom int) {
	if free <= 0 {
		return 0, 0
	}
	top = (free + weight) / 2
	if top < 0 {
		top = 0
	}
	if top > free {
		top = free
	}
	return top, free - top
}
