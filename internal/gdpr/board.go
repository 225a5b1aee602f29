package gdpr

// Row is a request as shown on the board.
type Row struct {
	DataRequest
	// HasContent is only computed for deletion requests.
	HasContent bool
}

// Bucket holds the requests of one type.
type Bucket struct {
	Type RequestType
	Rows []Row
}

// Label returns the tab title.
func (b Bucket) Label() string {
	return b.Type.Label()
}

// Count returns the number of requests in the bucket.
func (b Bucket) Count() int {
	return len(b.Rows)
}

// Board is the requests page model: one bucket per type, in tab order.
type Board struct {
	Buckets []Bucket
}

// NewBoard groups requests by type. Requests with an unknown type are
// ignored. Order inside a bucket follows the list.
func NewBoard(requests []DataRequest) Board {
	index := make(map[RequestType]int, len(RequestTypes))
	b := Board{Buckets: make([]Bucket, len(RequestTypes))}
	for i, t := range RequestTypes {
		b.Buckets[i] = Bucket{Type: t, Rows: []Row{}}
		index[t] = i
	}
	for _, r := range requests {
		i, ok := index[r.Type]
		if !ok {
			continue
		}
		b.Buckets[i].Rows = append(b.Buckets[i].Rows, Row{DataRequest: r})
	}
	return b
}

// Bucket returns the bucket of t, empty for unknown types.
func (b Board) Bucket(t RequestType) Bucket {
	for _, bucket := range b.Buckets {
		if bucket.Type == t {
			return bucket
		}
	}
	return Bucket{Type: t}
}

// Total returns the number of requests across buckets.
func (b Board) Total() int {
	n := 0
	for _, bucket := range b.Buckets {
		n += bucket.Count()
	}
	return n
}
