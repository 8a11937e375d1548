package qobj

import (
	"math"
	"math/cmplx"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

const summaryTolerance = 1e-12

type Amplitude struct {
	Index int     `json:"index"`
	Re    float64 `json:"re"`
	Im    float64 `json:"im"`
}

// Summary is a JSON-friendly description of a Qobj. Amplitudes are only
// filled for kets and only for non-negligible entries.
type Summary struct {
	Type       string      `json:"type"`
	Dims       [2][]int    `json:"dims"`
	Shape      [2]int      `json:"shape"`
	Norm       float64     `json:"norm"`
	Hermitian  bool        `json:"hermitian"`
	NonZero    int         `json:"non_zero"`
	Trace      *Amplitude  `json:"trace,omitempty"`
	Amplitudes []Amplitude `json:"amplitudes,omitempty"`
}

func (q *Qobj) typeName() string {
	switch {
	case q.IsKet():
		return "ket"
	case q.IsBra():
		return "bra"
	case q.IsOper():
		return "oper"
	default:
		return "super"
	}
}

// Summary describes q.
func (q *Qobj) Summary() *Summary {
	r, c := q.Shape()
	s := &Summary{
		Type:      q.typeName(),
		Dims:      q.Dims(),
		Shape:     [2]int{r, c},
		Norm:      q.Norm(),
		Hermitian: q.IsHerm(summaryTolerance),
	}
	for i, v := range q.raw().Data {
		if cmplx.Abs(v) <= summaryTolerance {
			continue
		}
		s.NonZero++
		if q.IsKet() {
			s.Amplitudes = append(s.Amplitudes, Amplitude{Index: i, Re: round(real(v)), Im: round(imag(v))})
		}
	}
	if q.IsOper() {
		t := q.Tr()
		s.Trace = &Amplitude{Re: round(real(t)), Im: round(imag(t))}
	}
	return s
}

func round(x float64) float64 {
	return math.Round(x*1e12) / 1e12
}

// ToString returns the pretty printed JSON summary of q.
func (q *Qobj) ToString() string {
	st, err := jsonIter.Marshal(q.Summary())
	if err != nil {
		zap.L().Error("Failed to marshal qobj.Summary")
		return ""
	}
	return string(pretty.Pretty(st))
}
