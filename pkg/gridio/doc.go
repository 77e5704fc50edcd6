// Package gridio reads and writes layout files for the dashgrid tools.
//
// The engine itself performs no I/O; serialization is the collaborator's
// job, and this package is that collaborator for the CLI. The format is
// a JSON document holding the column count and the item list:
//
//	{
//	  "columns": 12,
//	  "items": [
//	    {"id": "chart", "x": 0, "y": 0, "w": 6, "h": 4},
//	    {"id": "clock", "x": 6, "y": 0, "w": 2, "h": 2, "static": true}
//	  ]
//	}
//
// Omitted coordinates mean "auto-place me" (the engine's Unplaced
// sentinel); omitted capability flags default to true; omitted minimum
// spans default to 1 and omitted maximums to unbounded. Round-tripping a
// document preserves every field the engine's contracts use.
package gridio
