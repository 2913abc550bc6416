package domain

type Route struct {
	ID            int64
	SourceID      int64
	DestinationID int64
	Distance      int
	Source        *Airport
	Destination   *Airport
}

// Label is the compact "source - destination" display form of the route.
func (r Route) Label() string {
	src, dst := "", ""
	if r.Source != nil {
		src = r.Source.Name
	}
	if r.Destination != nil {
		dst = r.Destination.Name
	}
	return src + " - " + dst
}
