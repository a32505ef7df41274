package evaluation

// EntityRecall computes the fraction of required entities present in the
// extracted set. A case that requires no entities is fully satisfied.
func EntityRecall(required, extracted []string) float64 {
	if len(required) == 0 {
		return 1.0
	}

	extractedSet := make(map[string]struct{}, len(extracted))
	for _, e := range extracted {
		extractedSet[e] = struct{}{}
	}

	found := 0
	for _, r := range required {
		if _, ok := extractedSet[r]; ok {
			found++
		}
	}

	return float64(found) / float64(len(required))
}

// MissingEntities returns the required entities absent from the extracted set.
func MissingEntities(required, extracted []string) []string {
	extractedSet := make(map[string]struct{}, len(extracted))
	for _, e := range extracted {
		extractedSet[e] = struct{}{}
	}

	missing := make([]string, 0)
	for _, r := range required {
		if _, ok := extractedSet[r]; !ok {
			missing = append(missing, r)
		}
	}

	return missing
}

const calibrationBuckets = 5

// newCalibration returns fixed-width confidence buckets covering [0,1].
func newCalibration() []CalibrationBucket {
	buckets := make([]CalibrationBucket, calibrationBuckets)
	width := 1.0 / float64(calibrationBuckets)
	for i := range buckets {
		buckets[i].Lower = float64(i) * width
		buckets[i].Upper = buckets[i].Lower + width
	}
	return buckets
}

// bucketIndex maps a confidence onto its calibration bucket. Confidence 1.0
// lands in the top bucket.
func bucketIndex(confidence float64) int {
	if confidence >= 1.0 {
		return calibrationBuckets - 1
	}
	if confidence < 0 {
		return 0
	}
	return int(confidence * calibrationBuckets)
}
