package tagging

// A Line is the bookkeeping associated with one way of a set. Tag and LastUsed
// carry no meaning while IsValid is false.
type Line struct {
	IsValid  bool
	Tag      uint64
	LastUsed uint64
}

// TagArray holds the lines of every set in one flat slice, together with the
// LRU clock that orders every touch in the cache.
type TagArray interface {
	GetSet(reqAddr uint64) (setID int, lines []Line)
	Lookup(reqAddr uint64) (setID, wayID int, found bool)
	Visit(setID, wayID int)
	Fill(setID, wayID int, tag uint64) (evicted Line)
	Line(setID, wayID int) Line
	TagOf(reqAddr uint64) uint64
	Clock() uint64
	Reset()
}

// NewTagArray creates a tag array with 2^log2NumSets sets of numWays lines,
// holding blocks of 2^log2BlockSize bytes.
func NewTagArray(
	log2NumSets uint,
	numWays int,
	log2BlockSize uint,
) TagArray {
	t := &tagArrayImpl{
		Log2NumSets:   log2NumSets,
		NumWays:       numWays,
		Log2BlockSize: log2BlockSize,
	}

	t.Reset()

	return t
}

type tagArrayImpl struct {
	Log2NumSets   uint
	NumWays       int
	Log2BlockSize uint
	Lines         []Line

	// clock starts at 1 so that a stamped line is always younger than an
	// empty one.
	clock uint64
}

func (d *tagArrayImpl) numSets() int {
	return 1 << d.Log2NumSets
}

func (d *tagArrayImpl) setIDOf(reqAddr uint64) int {
	mask := uint64(d.numSets()) - 1
	return int((reqAddr >> d.Log2BlockSize) & mask)
}

// TagOf returns the high-order bits of the address above the set index.
func (d *tagArrayImpl) TagOf(reqAddr uint64) uint64 {
	return reqAddr >> (d.Log2BlockSize + d.Log2NumSets)
}

// GetSet returns the set that a certain address should store at. The lines
// slice aliases the array and must not be retained across calls to Fill.
func (d *tagArrayImpl) GetSet(reqAddr uint64) (setID int, lines []Line) {
	setID = d.setIDOf(reqAddr)
	start := setID * d.NumWays
	lines = d.Lines[start : start+d.NumWays]

	return
}

// Lookup finds the way that holds reqAddr.
func (d *tagArrayImpl) Lookup(reqAddr uint64) (setID, wayID int, found bool) {
	setID, lines := d.GetSet(reqAddr)
	tag := d.TagOf(reqAddr)

	for i, line := range lines {
		if line.IsValid && line.Tag == tag {
			return setID, i, true
		}
	}

	return setID, 0, false
}

// Visit marks the line as the most recently used one.
func (d *tagArrayImpl) Visit(setID, wayID int) {
	d.Lines[d.index(setID, wayID)].LastUsed = d.tick()
}

// Fill places tag into the given way and returns what was there before.
func (d *tagArrayImpl) Fill(setID, wayID int, tag uint64) (evicted Line) {
	i := d.index(setID, wayID)
	evicted = d.Lines[i]

	d.Lines[i] = Line{
		IsValid:  true,
		Tag:      tag,
		LastUsed: d.tick(),
	}

	return evicted
}

// Line returns a copy of the line at the given position.
func (d *tagArrayImpl) Line(setID, wayID int) Line {
	return d.Lines[d.index(setID, wayID)]
}

// Clock returns the stamp the next touch will receive.
func (d *tagArrayImpl) Clock() uint64 {
	return d.clock
}

// Reset invalidates every line and rewinds the clock.
func (d *tagArrayImpl) Reset() {
	d.Lines = make([]Line, d.numSets()*d.NumWays)
	d.clock = 1
}

func (d *tagArrayImpl) index(setID, wayID int) int {
	return setID*d.NumWays + wayID
}

func (d *tagArrayImpl) tick() uint64 {
	now := d.clock
	d.clock++

	return now
}
