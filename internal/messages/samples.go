package messages

// sampleTexts returns demonstration intake messages covering each task
// category, including a multi-provider records request that exercises
// the provider fan-out path.
func sampleTexts() []string {
	return []string{
		"Hey I need my medical records from Dr Smith for my car accident on May 15th. My name is John Doe born 3/20/1985",
		"hi its sarah johnson dob 6/12/1990 can u get my records from orlando health? i was there sept 20-23 for the slip and fall at walmart",
		"Need records ASAP!!! John Martinez 4/5/78. Treatment at Florida Hospital after motorcycle crash last month. Dr. Patel was treating physician.",
		"Hi this is Mike Chen, can we reschedule my consultation from Thursday to next week? Any day works for me. Thanks!",
		"Hey just checking in on my case status. Haven't heard anything in 2 weeks. This is Lisa Brown, case #12345",
		"This is Maria Gonzalez, DOB 11/2/1982. After my fall in January I saw Dr. Reyes at Coastal Orthopedics and also got an MRI at Bayview Imaging. Can you request records from both for my injury claim?",
		"What's the weather like today?",
	}
}
