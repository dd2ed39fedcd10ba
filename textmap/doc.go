// Package textmap draws maze faces and lattice layers as plain text for
// terminals, logs and tests.
//
// A face is drawn with its highest row first, so Top points up the page:
//
//	+---+---+
//	| G   . |
//	+   +---+
//	| S   . |
//	+---+---+
//
// Cell markers: S start, G goal, * tracked path, . visited. Edges on a
// cube seam are drawn open once the seam wall is gone. WithColor adds
// terminal colours through gookit/color.
package textmap
