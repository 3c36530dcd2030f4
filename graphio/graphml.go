package graphio

import (
	"encoding/xml"
)

const graphmlNS = "http://graphml.graphdrawing.org/xmlns"

type graphmlDoc struct {
	XMLName xml.Name       `xml:"graphml"`
	XMLNS   string         `xml:"xmlns,attr,omitempty"`
	Graphs  []graphmlGraph `xml:"graph"`
}

type graphmlGraph struct {
	ID          string        `xml:"id,attr,omitempty"`
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphmlNode `xml:"node"`
	Edges       []graphmlEdge `xml:"edge"`
}

type graphmlNode struct {
	ID string `xml:"id,attr"`
}

type graphmlEdge struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}
