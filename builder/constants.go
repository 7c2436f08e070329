// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCircle is the canonical name for the Circle constructor.
	MethodCircle = "Circle"
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCircleVertices is the smallest circle; a single vertex is a self-loop.
const MinCircleVertices = 1

// MinPathVertices is the smallest path; a single vertex has no edges.
const MinPathVertices = 1

// MinCompleteVertices is the smallest complete graph.
const MinCompleteVertices = 1

// MinRandomVertices is the smallest random graph (0 vertices, 0 edges).
const MinRandomVertices = 0
