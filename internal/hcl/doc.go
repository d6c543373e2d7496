// Package hcl provides the concrete HCL implementation of config.Loader.
//
// Profile files contain exporter blocks:
//
//	exporter "forum" {
//	  base_url  = env.FORUM_URL
//	  preceders = ["nr", "nodered", "node-red"]
//	}
//
//	exporter "nightly-issues" {
//	  extends = "issues"
//	  compact = false
//	}
//
// A block named after a known profile overlays it. A new block either starts
// empty or, with extends, from a copy of another profile. Only attributes that
// are present in the block are applied. Expressions may read environment
// variables through the env object.
package hcl
