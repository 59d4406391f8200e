// Copyright (c) 2020 Siemens AG
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//
// Author(s): Jonas Plum

package report

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/forensicanalysis/photosqlite/catalog"
	"github.com/forensicanalysis/photosqlite/decode"
)

// Photos stores -180.0 for assets without location.
const noLocation = -180.0

type kmlDocument struct {
	XMLName  xml.Name `xml:"kml"`
	Xmlns    string   `xml:"xmlns,attr"`
	Document struct {
		Name       string         `xml:"name"`
		Placemarks []kmlPlacemark `xml:"Placemark"`
	} `xml:"Document"`
}

type kmlTimeStamp struct {
	When string `xml:"when"`
}

type kmlPlacemark struct {
	Name      string        `xml:"name"`
	TimeStamp *kmlTimeStamp `xml:"TimeStamp,omitempty"`
	Point     struct {
		Coordinates string `xml:"coordinates"`
	} `xml:"Point"`
}

// Coordinate returns the location of a row and whether it is a real one.
func Coordinate(lat, lon decode.Value) (float64, float64, bool) {
	latitude, ok := number(lat)
	if !ok {
		return 0, 0, false
	}
	longitude, ok := number(lon)
	if !ok {
		return 0, 0, false
	}
	if latitude == noLocation || longitude == noLocation {
		return 0, 0, false
	}
	if latitude == 0 && longitude == 0 {
		return 0, 0, false
	}
	return latitude, longitude, true
}

func number(v decode.Value) (float64, bool) {
	switch v.Kind {
	case decode.Integer:
		return float64(v.Int), true
	case decode.Real:
		return v.Real, true
	case decode.Text:
		f, err := strconv.ParseFloat(v.Text, 64)
		return f, err == nil
	}
	return 0, false
}

func (w *Writer) placemarks(b *Bundle) []kmlPlacemark {
	lat, lon := b.Column(catalog.Latitude), b.Column(catalog.Longitude)
	if lat < 0 || lon < 0 {
		return nil
	}
	name, when := b.Column(catalog.Filename), b.Column(catalog.AddedDate)

	var placemarks []kmlPlacemark
	for i, row := range b.Rows {
		latitude, longitude, ok := Coordinate(row[lat], row[lon])
		if !ok {
			continue
		}
		p := kmlPlacemark{Name: fmt.Sprintf("row %d", i+1)}
		if name >= 0 && !row[name].IsNull() {
			p.Name = row[name].String()
		}
		if when >= 0 && !row[when].IsNull() {
			p.TimeStamp = &kmlTimeStamp{When: row[when].String()}
		}
		p.Point.Coordinates = strconv.FormatFloat(longitude, 'f', -1, 64) + "," + strconv.FormatFloat(latitude, 'f', -1, 64)
		placemarks = append(placemarks, p)
	}
	return placemarks
}

// writeKML skips bundles without any located row.
func (w *Writer) writeKML(b *Bundle) error {
	placemarks := w.placemarks(b)
	if len(placemarks) == 0 {
		return nil
	}

	doc := kmlDocument{Xmlns: "http://www.opengis.net/kml/2.2"}
	doc.Document.Name = b.Artifact
	doc.Document.Placemarks = placemarks

	name := w.KMLPath(b)
	f, err := w.create(name)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", name)
	}
	if _, err := f.WriteString(xml.Header); err != nil {
		f.Close()
		return err
	}
	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return errors.Wrapf(err, "could not write %s", name)
	}
	return f.Close()
}
