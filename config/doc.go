// Package config loads per-operation pagination configurations from files.
//
// Configuration lives under an "operations" list; yaml, json and toml are
// all accepted (viper native):
//
//	operations:
//	  - name: ListObjects
//	    input_token: Marker
//	    output_token: NextMarker
//	    limit_key: MaxKeys
//	    result_key: Contents
//	    more_results: IsTruncated
//	    page_size: 100
//	  - name: ListObjectVersions
//	    input_token: [KeyMarker, VersionIdMarker]
//	    output_token: [NextKeyMarker, NextVersionIdMarker]
//	    result_key: Versions
//
// input_token and output_token accept a single string or a list of strings;
// a list declares a composite token and both sides must have the same
// length, which is checked at load time.
//
// A Provider keeps the loaded mapping, can rebuild it on file change, and
// hands out paging registries:
//
//	provider, err := config.New("pagination.yaml")
//	if err != nil {
//	    return err
//	}
//	registry := provider.Registry(nil)
package config
