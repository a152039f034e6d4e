package constants

// ReviewConfidenceThreshold flags OCR-sourced extractions below this
// confidence for manual review.
const ReviewConfidenceThreshold float32 = 0.6
