// Package guidgen generates Universally Unique Identifiers of every version
// defined by RFC 4122 and RFC 9562.
//
// Supported schemes:
//   - Version 1: Gregorian time, clock sequence and node (NewV1, NewV1R)
//   - Version 2: DCE security with a domain and local ID (NewV2, NewV2Org, NewV2Other)
//   - Version 3 and 5: MD5 and SHA-1 name-based (NewV3, NewV5)
//   - Version 4: random (NewV4)
//   - Version 6: version 1 time reordered for sorting, with a random tail (NewV6),
//     the node ID (NewV6P) or a random node (NewV6R)
//   - Version 7: Unix milliseconds with a monotonic counter (New, NewV7)
//   - Version 8: random or name-based with SHA-2, SHA-3 or SHAKE (NewV8, NewV8SHA256, ...)
//
// Basic Usage:
//
//	// Generate a new UUIDv7
//	id, err := guidgen.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Name-based IDs are deterministic
//	id, err = guidgen.NewV5(guidgen.NamespaceDNS, []byte("www.example.com"))
//
//	// Decompose
//	fmt.Println(id.Version(), id.Variant(), id.Time())
//
// Custom Generator:
//
//	gen := guidgen.NewGenerator(
//	    guidgen.WithLogger(logger),
//	    guidgen.WithStateStore(store),
//	)
//	defer gen.Close()
//	id, err := gen.NewV6()
//
// Thread Safety:
//
// All operations are thread-safe. Time-based schemes serialize on one mutex
// per tick unit; name-based and random schemes take no lock.
//
// Build Tags:
//
// Building with -tags guidgen_legacy restricts the package to versions 1
// through 5; the version 6, 7 and 8 operations then fail with
// ErrUnsupportedScheme.
package guidgen
