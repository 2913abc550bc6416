package domain

type Airport struct {
	ID             int64
	Name           string
	ClosestBigCity string
}
