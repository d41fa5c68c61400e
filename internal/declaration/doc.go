// Package declaration loads the API declaration files availgen consumes.
//
// A declaration file lists the functions, methods, properties and types of
// an interface together with their per-platform availability records. Files
// are YAML or JSON, chosen by extension:
//
//	declarations:
//	  - name: Open
//	    kind: function
//	    availability:
//	      - platform: ios
//	        introduced: {major: 1, minor: 5}
//	      - platform: macos
//	        unavailable: true
//	  - name: Open
//	    kind: function
//	    availability:
//	      - platform: ios
//	        deprecated: {major: 9}
//
// Declarations sharing a name describe one logical API; [Groups] buckets
// them in first-seen order and [Group.Availability] merges their records
// into a single resolved verdict.
//
// [Check] lints a file against the configured deployment targets without
// failing on the first finding; the result carries every issue with its
// declaration and platform coordinates.
package declaration
