// Package validator provides rule-based field validation with translatable errors.
//
// Rules are plain values pairing a check with the error reported when the
// check fails. Apply runs every rule and collects all failures:
//
//	err := validator.Apply(
//		validator.RequiredString("subject", msg.Subject),
//		validator.MinLenString("subject", msg.Subject, 3),
//		validator.ValidEmail("recipients[0]", msg.Recipients[0]),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//		// render field errors
//	}
//
// Every ValidationError carries a TranslationKey and TranslationValues so the
// caller can localize messages with ValidationErrors.Translate.
package validator
