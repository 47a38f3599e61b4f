// Package config loads and validates emoji configurations.
//
// A configuration maps emoji names to image definitions and is loaded
// wholesale from JSON or TOML:
//
//	{
//	  "version": "1.0.0",
//	  "emojis": {
//	    "smile": {"name": "smile", "image": "smile.gif", "width": 24, "height": 24}
//	  },
//	  "categories": {"faces": ["smile"]},
//	  "settings": {"defaultSize": {"width": 24, "height": 24}}
//	}
//
// A Configuration is immutable once loaded. Reconfiguration replaces it.
package config
