// Package filter holds the wire representation of parsed filters: the
// generic nested form that query executors consume, detached from source
// positions and host specifics.
//
// A filter is a list of expressions combined as an implicit AND. Leaf
// comparisons are objects, logic groups are two-element tuples. In JSON:
//
//	[
//	    {"field": "status", "operator": "==", "value": "active"},
//	    ["OR", [
//	        {"field": "age", "operator": ">", "value": 30},
//	        ["NOT", {"field": "name", "operator": "ilike", "value": "%bob%"}]
//	    ]]
//	]
//
// Serialize builds this form from a parsed AST, EncodeJSON and DecodeJSON
// move it across the wire, and the quick search helpers compose filters
// without going through filter text at all.
package filter
