package v1handler

import (
	"maps"
	"slices"
	"taxipark/pkg/domain"
	"taxipark/pkg/nicestring"
	"time"

	"github.com/go-faster/jx"
)

// EncodeReport writes report in its v1 wire form. Drivers in
// frequentPassengers are written in ascending order so the output is stable.
func EncodeReport(e *jx.Encoder, report *domain.ParkReport) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("parkId", func(e *jx.Encoder) { e.Str(report.ParkID.String()) })
		e.Field("fakeDrivers", func(e *jx.Encoder) { encodeStrings(e, report.FakeDrivers) })
		e.Field("faithfulMinTrips", func(e *jx.Encoder) { e.Int(report.FaithfulMinTrips) })
		e.Field("faithfulPassengers", func(e *jx.Encoder) { encodeStrings(e, report.FaithfulPassengers) })
		e.Field("frequentPassengers", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				for _, driver := range slices.Sorted(maps.Keys(report.FrequentPassengers)) {
					e.Field(string(driver), func(e *jx.Encoder) {
						encodeStrings(e, report.FrequentPassengers[driver])
					})
				}
			})
		})
		e.Field("smartPassengers", func(e *jx.Encoder) { encodeStrings(e, report.SmartPassengers) })
		e.Field("mostFrequentPeriod", func(e *jx.Encoder) {
			if report.MostFrequentPeriod == nil {
				e.Null()

				return
			}
			e.Obj(func(e *jx.Encoder) {
				e.Field("start", func(e *jx.Encoder) { e.Int(report.MostFrequentPeriod.Start) })
				e.Field("end", func(e *jx.Encoder) { e.Int(report.MostFrequentPeriod.End) })
			})
		})
		e.Field("paretoPrinciple", func(e *jx.Encoder) { e.Bool(report.ParetoPrinciple) })
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(report.CreatedAt.Format(time.RFC3339Nano)) })
	})
}

func encodeVerdict(e *jx.Encoder, input string, verdict nicestring.Verdict) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("input", func(e *jx.Encoder) { e.Str(input) })
		e.Field("nice", func(e *jx.Encoder) { e.Bool(verdict.Nice) })
		e.Field("noForbiddenSubstring", func(e *jx.Encoder) { e.Bool(verdict.NoForbiddenSubstring) })
		e.Field("enoughVowels", func(e *jx.Encoder) { e.Bool(verdict.EnoughVowels) })
		e.Field("doubleLetter", func(e *jx.Encoder) { e.Bool(verdict.DoubleLetter) })
	})
}

func encodeError(e *jx.Encoder, code, message string) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("code", func(e *jx.Encoder) { e.Str(code) })
				e.Field("message", func(e *jx.Encoder) { e.Str(message) })
			})
		})
	})
}

func encodeStrings[T ~string](e *jx.Encoder, items []T) {
	e.Arr(func(e *jx.Encoder) {
		for _, item := range items {
			e.Str(string(item))
		}
	})
}
