// Package validator provides stateless attribute validators for record-like
// values: a relational (inequality) comparator, a URL format validator with
// scheme, top-level-domain and root-path criteria, and simple email, MAC
// address, latitude and longitude checks.
//
// Every validator implements Validator. ValidateEach inspects one attribute
// value and, when the value is rejected, appends a message to the record's
// error list for that attribute. Expected invalid input never produces a Go
// error; only configuration mistakes do, at construction time.
//
// # Messages
//
// Messages come from the Message override on the validator options or, when
// empty, from a Catalog keyed by "errors.messages.<kind>". DefaultCatalog
// resolves those keys against the embedded English translations through the
// i18n package. Use NewTranslatorCatalog to plug in any other i18n.Translator.
//
// # Usage
//
//	rec := validator.NewMapRecord(map[string]any{
//	    "website":    "https://example.com",
//	    "start_date": start,
//	    "end_date":   end,
//	})
//
//	err := validator.NewRunner().Run(ctx, rec,
//	    validator.Validates("website", validator.NewURLValidator(validator.URLOptions{
//	        Scheme: []string{"https"},
//	    })),
//	    validator.Validates("start_date", validator.MustInequalityValidator(validator.InequalityOptions{
//	        LessThan: validator.Attr("end_date"),
//	    })),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("website") ...
//	}
//
// # Concurrency
//
// Validators hold no mutable state and may be shared across goroutines.
// Errors serializes appends, and Runner with WithConcurrency merges buffered
// results in declaration order so message order stays deterministic.
package validator
