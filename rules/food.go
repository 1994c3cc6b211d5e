package rules

import "image/color"

// FoodKind identifies which of the food recipes an item was made from.
type FoodKind uint8

// Food kinds.
const (
	FoodCommon FoodKind = iota
	FoodBig
	FoodPoison
)

func (k FoodKind) String() string {
	switch k {
	case FoodBig:
		return "big"
	case FoodPoison:
		return "poison"
	}
	return "common"
}

// Food is an item on the board. Eating it changes the eater's size by Size,
// poison has a negative Size.
type Food struct {
	Position Point
	Size     int
	Color    color.NRGBA
	Kind     FoodKind
}

// Poison reports whether eating the food shrinks the snake.
func (f *Food) Poison() bool {
	return f.Size <= 0
}

func newFood(kind FoodKind, p Point) *Food {
	f := &Food{Position: p, Kind: kind}
	switch kind {
	case FoodBig:
		f.Size, f.Color = 20, bigFoodColor
	case FoodPoison:
		f.Size, f.Color = -9, poisonColor
	default:
		f.Size, f.Color = 3, commonFoodColor
	}
	return f
}

// FoodList is the ordered set of food on the board.
type FoodList []*Food

// Add appends f.
func (l *FoodList) Add(f *Food) {
	*l = append(*l, f)
}

// Remove deletes f by identity, keeping the order of the rest.
func (l *FoodList) Remove(f *Food) bool {
	for i, o := range *l {
		if o == f {
			copy((*l)[i:], (*l)[i+1:])
			(*l)[len(*l)-1] = nil
			*l = (*l)[:len(*l)-1]
			return true
		}
	}
	return false
}

// At returns the food lying on p.
func (l FoodList) At(p Point) []*Food {
	var found []*Food
	for _, f := range l {
		if f.Position.Equal(p) {
			found = append(found, f)
		}
	}
	return found
}

// Count returns how many items of kind are on the board.
func (l FoodList) Count(kind FoodKind) int {
	n := 0
	for _, f := range l {
		if f.Kind == kind {
			n++
		}
	}
	return n
}
