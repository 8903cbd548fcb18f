package response

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
)

// calendar dates leave the API as YYYY-MM-DD; timestamps keep RFC 3339
var dateToString = copier.TypeConverter{
	SrcType: time.Time{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		t, ok := src.(time.Time)
		if !ok {
			return nil, fmt.Errorf("expected time.Time, got %T", src)
		}
		return formatDate(t), nil
	},
}

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{dateToString},
}

// mustCopy maps a read model onto a response. Failure means the two structs
// drifted apart, which is a programming error.
func mustCopy[T any](src any) *T {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		panic(fmt.Sprintf("response mapping %T -> %T: %v", src, dst, err))
	}
	return dst
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
