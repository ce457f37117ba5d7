package port

import "time"

// Random источник равномерных значений из [0,1)
type Random interface {
	Float64() float64
}

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}
