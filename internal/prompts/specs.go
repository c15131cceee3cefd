package prompts

const classifySpec = `Respond with a JSON object matching this exact structure:

{
  "task_type": "records_request",
  "confidence": 0.4,
  "reasoning": "<quality assessment>",
  "author": "<client name or Unknown Client>",
  "header": "<professional subject line>",
  "quality_issues": ["<missing critical detail>"]
}

Field constraints:
- task_type: One of records_request, scheduling, status_update, other.
- confidence: Number between 0 and 1. Default low (0.4-0.5) unless the
  category's critical details are all present.
- reasoning: Detailed assessment of why this category applies and what
  information is or is not present.
- author: Name extracted from the message, or "Unknown Client".
- header: Subject line summarizing the request, 60 characters maximum.
- quality_issues: Missing critical information, one entry per issue.
  Empty array when nothing critical is missing.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Never invent details that are not in the message`

const recordsSpec = `Respond with a JSON object matching this exact structure:

{
  "subject": "Medical Records Request - <patient name>",
  "body": "<full professional email text>",
  "extracted_info": {
    "patient_name": "<name or 'Not found'>",
    "dob": "<date or 'Not found'>",
    "date_range": "<dates or 'Not found'>"
  },
  "providers": [
    {
      "provider_name": "<hospital, doctor, or clinic name>",
      "provider_type": "hospital|doctor|clinic",
      "treatment_context": "<why the patient was treated there>",
      "specific_dates": "<treatment dates for this provider>"
    }
  ],
  "provider_count": 1,
  "requires_multiple_requests": false,
  "confidence": 0.95
}

Field constraints:
- providers: One entry per distinct provider mentioned in the message.
  Never merge distinct providers; never duplicate the same provider.
- provider_count: Must equal the length of the providers array.
- requires_multiple_requests: true only when provider_count is 2 or more.
- body: When multiple providers are detected, a summary noting how many
  separate requests will be generated; otherwise the full request email.
- extracted_info values: Use "Not found" when absent, never empty strings.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Patient information is shared across all provider requests`

const schedulingSpec = `Respond with a JSON object matching this exact structure:

{
  "subject": "Re: Appointment Request",
  "body": "<professional response with meeting details>",
  "extracted_info": {
    "client_name": "<name or 'Not found'>",
    "requested_date": "<date or 'Not specified'>",
    "requested_time": "<time or 'Not specified'>",
    "meeting_type": "<consultation, follow-up, etc. or 'Not specified'>",
    "duration": "<estimated duration or 'Not specified'>"
  },
  "suggested_invite": {
    "title": "<meeting title>",
    "date": "<proposed date>",
    "time": "<proposed time>",
    "duration": "30 minutes"
  },
  "confidence": 0.9
}

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Use "Not specified" for absent scheduling details, never empty strings`

const statusSpec = `Respond with a JSON object matching this exact structure:

{
  "subject": "Re: Case Status Inquiry",
  "body": "<professional status update response>",
  "extracted_info": {
    "client_name": "<name or 'Not found'>",
    "case_number": "<case number or 'Not found'>",
    "inquiry_type": "<status, timeline, etc. or 'general'>",
    "urgency": "high|medium|low"
  },
  "recommended_action": "<what the paralegal should do next>",
  "confidence": 0.85
}

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Use "Not found" for absent client details, never empty strings`

var specs = map[Stage]string{
	StageClassify:   classifySpec,
	StageRecords:    recordsSpec,
	StageScheduling: schedulingSpec,
	StageStatus:     statusSpec,
}

// Spec returns the hardcoded response specification for a triage stage.
// Specifications define the expected output format and behavioral constraints.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
