package queryutil_test

import (
	"errors"
	"net/url"
	"testing"

	"newsdesk/internal/handler/http/queryutil"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    int64
		wantErr error
	}{
		{name: "valid", query: "id=42", want: 42},
		{name: "valid large", query: "id=9223372036854775807", want: 9223372036854775807},
		{name: "missing", query: "", wantErr: queryutil.ErrMissingID},
		{name: "missing among others", query: "category=sports", wantErr: queryutil.ErrMissingID},
		{name: "empty value", query: "id=", wantErr: queryutil.ErrMissingID},
		{name: "not a number", query: "id=abc", wantErr: queryutil.ErrInvalidID},
		{name: "zero", query: "id=0", wantErr: queryutil.ErrInvalidID},
		{name: "negative", query: "id=-5", wantErr: queryutil.ErrInvalidID},
		{name: "float", query: "id=1.5", wantErr: queryutil.ErrInvalidID},
		{name: "overflow", query: "id=9223372036854775808", wantErr: queryutil.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			got, err := queryutil.ExtractID(values)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("id = %d, want %d", got, tt.want)
			}
		})
	}
}
