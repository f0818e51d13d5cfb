package annotation

// contentFixture is a small two-file collection used across the
// package tests: three office events on audio_001.wav and two meeting
// events on audio_002.wav.
func contentFixture() *Collection {
	return NewCollection([]Event{
		{Filename: "audio_001.wav", SceneLabel: "office", EventLabel: "speech", Onset: Float(1.0), Offset: Float(10.0)},
		{Filename: "audio_001.wav", SceneLabel: "office", EventLabel: "mouse clicking", Onset: Float(3.0), Offset: Float(5.0)},
		{Filename: "audio_001.wav", SceneLabel: "office", EventLabel: "printer", Onset: Float(7.0), Offset: Float(9.0)},
		{Filename: "audio_002.wav", SceneLabel: "meeting", EventLabel: "speech", Onset: Float(1.0), Offset: Float(9.0)},
		{Filename: "audio_002.wav", SceneLabel: "meeting", EventLabel: "printer", Onset: Float(5.0), Offset: Float(7.0)},
	})
}

// speechFixture holds four speech events on one file with varying gaps,
// used by the processing and segment tests.
func speechFixture() *Collection {
	return NewCollection([]Event{
		{Filename: "audio_001.wav", EventLabel: "speech", Onset: Float(1.0), Offset: Float(1.2)},
		{Filename: "audio_001.wav", EventLabel: "speech", Onset: Float(1.5), Offset: Float(3.0)},
		{Filename: "audio_001.wav", EventLabel: "speech", Onset: Float(4.0), Offset: Float(6.0)},
		{Filename: "audio_001.wav", EventLabel: "speech", Onset: Float(7.0), Offset: Float(8.0)},
	})
}

// tagFixture holds events carrying tag lists.
func tagFixture() *Collection {
	return NewCollection([]Event{
		{Filename: "audio_001.wav", SceneLabel: "office", Tags: []string{"cat", "dog"}},
		{Filename: "audio_002.wav", SceneLabel: "meeting", Tags: []string{"dog"}},
		{Filename: "audio_003.wav", SceneLabel: "office", Tags: []string{"bird", "cat"}},
	})
}
