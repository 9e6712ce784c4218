// Package files provides measurement file discovery for the charge
// analyzer tools.
//
// Discovery lists the files in a data directory whose extension matches
// the configured measurement suffixes (.dat and .txt by default) and
// returns them sorted by name, giving batch runs a deterministic
// processing order. Relative directories are resolved against a base
// path to keep the tools portable.
//
// Example usage:
//
//	discovery := files.NewDiscovery(".", []string{".dat"})
//	infos, err := discovery.FindMeasurementFiles("data")
package files
