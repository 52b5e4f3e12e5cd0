// Package metadata provides parsing for Spring Boot configuration metadata
// descriptors (spring-configuration-metadata.json).
//
// # Overview
//
// The spring-boot-configuration-processor emits one descriptor per compiled
// module, describing the module's configuration surface:
//   - Groups: configuration namespaces declared by @ConfigurationProperties
//   - Properties: individual configurable keys with type, description,
//     default value and deprecation status
//   - Hints: value suggestions for IDE tooling (not documented, dropped here)
//
// # Descriptor Format
//
// A descriptor is a single JSON object with up to three arrays:
//
//	{
//	  "groups": [
//	    { "name": "server", "type": "com.example.ServerProperties" }
//	  ],
//	  "properties": [
//	    {
//	      "name": "server.port",
//	      "type": "java.lang.Integer",
//	      "description": "Port the embedded server listens on.",
//	      "defaultValue": 8080
//	    }
//	  ],
//	  "hints": []
//	}
//
// # Validation Rules
//
//   - The top level must be a JSON object; any section other than groups,
//     properties and hints is rejected
//   - Every group and property entry must carry a non-blank name
//   - A "deprecation" object wins over the legacy "deprecated" boolean;
//     the boolean alone yields an empty deprecation marker
//   - Default values keep their literal form: numbers are decoded as
//     json.Number so 8080 never becomes "8080.000000"
//
// # Usage
//
// Parse a descriptor into its normalized item stream (groups before
// properties, on-disk order preserved within each section):
//
//	items, err := metadata.Parse(content, filePath)
//	if err != nil {
//	    // ParseError carries the path, a line number when known, and a hint
//	    return err
//	}
//
// # Design Principles
//
//  1. Fail Fast: one malformed descriptor aborts the run before anything is written
//  2. Literal Fidelity: defaults render exactly as they appear in the descriptor
//  3. Order Preserving: item order is the document's on-disk order, never sorted
//  4. Pure Go: no external dependencies (uses stdlib encoding/json)
package metadata
