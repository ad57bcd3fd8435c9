package jsonutil

import (
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	type position struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"lat":37.79,"lon":-122.43}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v position
			err := UnmarshalWithContext(tt.data, &v, "decode position")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && v.Lat != 37.79 {
				t.Errorf("UnmarshalWithContext() v.Lat = %v, want %v", v.Lat, 37.79)
			}
		})
	}
}

func TestUnmarshalArray(t *testing.T) {
	type entry struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
		wantLen int
	}{
		{
			name:    "non-empty array",
			data:    []byte(`[{"id":"b1","name":"Osprey"}]`),
			wantErr: false,
			wantLen: 1,
		},
		{
			name:    "empty array",
			data:    []byte(`[]`),
			wantErr: false,
			wantLen: 0,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalArray[entry](tt.data, "decode boats")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalArray() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if len(got) != tt.wantLen {
				t.Errorf("UnmarshalArray() len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}
