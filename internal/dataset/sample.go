package dataset

// Sample returns a small bundled dataset. The first record is the reference
// example from the MoreHopQA paper release; note its no_of_hops does not match
// the decomposition length, which Lint reports.
func Sample() Dataset {
	return Dataset{
		Source: "sample",
		Records: []Record{
			{
				ID:                 "5ae5072e55429960a22e0246_13",
				Question:           `How many repeated letters are there in the first name of the current drummer of the band who did the song "What Lovers Do"?`,
				Answer:             "1",
				AnswerType:         strPtr("number"),
				ReasoningType:      strPtr("Commonsense, Arithmetic"),
				NoOfHops:           intPtr(2),
				PreviousQuestion:   strPtr(`Who is the current drummer of the band who did the song "What Lovers Do"?`),
				PreviousAnswer:     strPtr("Matt Flynn"),
				PreviousAnswerType: strPtr("person"),
				Pattern:            strPtr("How many repeated letters are there in the first name of #Name?"),
				SubquestionPattern: []string{"What is the first name of #Name?", "How many repeated letters are there in #Ans1?"},
				CuttedQuestion:     strPtr(`the current drummer of the band who did the song "What Lovers Do"`),
				QuesOnLastHop:      strPtr("How many repeated letters are there in the first name of the current drummer of Maroon 5?"),
				Decomposition: []SubQuestion{
					{SubID: "1", Question: `Which band did the song "What Lovers Do"?`, Answer: "Maroon 5", SupportTitle: "What Lovers Do"},
					{SubID: "2", Question: "Who is the current drummer of Maroon 5?", Answer: "Matt Flynn", SupportTitle: "Maroon 5"},
					{
						SubID:    "3",
						Question: "How many repeated letters are there in the first name of Matt Flynn?",
						Answer:   "1",
						Details: []SubQuestion{
							{SubID: "3_1", Question: "What is the first name of Matt Flynn?", Answer: "Matt"},
							{SubID: "3_2", Question: "How many repeated letters are there in Matt?", Answer: "1"},
						},
					},
				},
				Context: []ContextParagraph{
					{Title: "Maroon 5", Sentences: []string{
						"Maroon 5 is an American pop rock band that originated in Los Angeles, California.",
						" It currently consists of lead vocalist Adam Levine, keyboardist and rhythm guitarist Jesse Carmichael, bassist Mickey Madden, lead guitarist James Valentine, drummer Matt Flynn and keyboardist PJ Morton.",
					}},
					{Title: "What Lovers Do", Sentences: []string{
						`"What Lovers Do" is a song by American pop rock band Maroon 5 featuring American R&B singer Sza.`,
						" It was released on August 30, 2017, as the third single from the band's upcoming sixth studio album (2017).",
					}},
				},
			},
			{
				ID:            "sample_02",
				Question:      "What is the last name of the lead vocalist of Maroon 5 written backwards?",
				Answer:        "enivel",
				AnswerType:    strPtr("person"),
				ReasoningType: strPtr("Symbolic"),
				NoOfHops:      intPtr(2),
				Decomposition: []SubQuestion{
					{SubID: "1", Question: "Who is the lead vocalist of Maroon 5?", Answer: "Adam Levine", SupportTitle: "Maroon 5"},
					{SubID: "2", Question: "What is Levine written backwards?", Answer: "enivel"},
				},
				Context: []ContextParagraph{
					{Title: "Maroon 5", Sentences: []string{"Maroon 5 is an American pop rock band."}},
					{Title: "Adam Levine", Sentences: []string{"Adam Noah Levine is an American singer."}},
				},
			},
			{
				ID:            "sample_03",
				Question:      "How many years after the birth of the designer of the Eiffel Tower was it completed?",
				Answer:        "57",
				AnswerType:    strPtr("date"),
				ReasoningType: strPtr("Arithmetic"),
				NumHops:       intPtr(3),
				Decomposition: []SubQuestion{
					{SubID: "1", Question: "Who designed the Eiffel Tower?", Answer: "Gustave Eiffel", SupportTitle: "Eiffel Tower"},
					{SubID: "2", Question: "When was Gustave Eiffel born?", Answer: "1832", SupportTitle: "Gustave Eiffel"},
					{SubID: "3", Question: "How many years between 1832 and 1889?", Answer: "57", SupportTitle: "Paris"},
				},
				Context: []ContextParagraph{
					{Title: "Eiffel Tower", Sentences: []string{"The Eiffel Tower was completed in 1889."}},
					{Title: "Gustave Eiffel", Sentences: []string{"Gustave Eiffel was born in 1832."}},
					{Title: "Paris", Sentences: []string{"Paris is the capital of France."}},
				},
			},
			{
				ID:            "sample_04",
				Question:      "Is the capital of France north of the equator?",
				Answer:        "yes",
				AnswerType:    strPtr("yes/no"),
				ReasoningType: strPtr("Commonsense"),
			},
		},
	}
}

func strPtr(value string) *string {
	return &value
}

func intPtr(value int) *int {
	return &value
}
