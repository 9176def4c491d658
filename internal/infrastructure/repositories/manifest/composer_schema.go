package manifest

// composerLockSchema describes the subset of composer.lock this reader relies on.
// Unknown keys are allowed so newer Composer versions keep validating.
const composerLockSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["packages"],
  "properties": {
    "packages": {
      "type": "array",
      "items": { "$ref": "#/definitions/package" }
    },
    "packages-dev": {
      "type": ["array", "null"],
      "items": { "$ref": "#/definitions/package" }
    }
  },
  "definitions": {
    "package": {
      "type": "object",
      "required": ["name", "version"],
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "version": { "type": "string" },
        "description": { "type": ["string", "null"] },
        "homepage": { "type": ["string", "null"] },
        "license": {
          "type": ["array", "string", "null"],
          "items": { "type": "string" }
        },
        "source": {
          "type": ["object", "null"],
          "properties": {
            "type": { "type": "string" },
            "url": { "type": "string" },
            "reference": { "type": ["string", "null"] }
          }
        }
      }
    }
  }
}`
