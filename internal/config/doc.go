// Package config provides configuration parsing for htmlnode projects.
//
// The configuration is stored in htmlnode.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "render": {
//	    "pretty": false,
//	    "indent": "  ",
//	    "lang": "en"
//	  },
//	  "serve": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "dir": "pages"
//	  },
//	  "output": {
//	    "dir": "dist",
//	    "s3": {
//	      "bucket": "my-site",
//	      "prefix": "pages/",
//	      "region": "eu-central-1"
//	    }
//	  },
//	  "log": {
//	    "level": "info"
//	  }
//	}
//
// Missing fields receive the defaults from New.
package config
