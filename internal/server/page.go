package server

const indexPage = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Map Art Maker</title>
    <style>
        body { font-family: sans-serif; display: flex; flex-direction: column; align-items: center; margin: 20px; }
        form { display: flex; flex-direction: column; gap: 8px; width: 360px; }
        #output { margin-top: 20px; width: 540px; }
        .command-text { font-family: monospace; background: #eee; padding: 8px; word-break: break-all; }
        .command-explanation { font-style: italic; }
        #preview { image-rendering: pixelated; border: 1px solid #ccc; }
    </style>
</head>
<body>
    <h1>Map Art Maker</h1>
    <form id="form">
        <input type="text" name="username" placeholder="Minecraft username">
        <input type="text" name="base" placeholder="Base block (default glass, or auto)">
        <input type="file" name="image" accept="image/*">
        <input type="hidden" name="upload" value="true">
        <button type="submit">Make script</button>
    </form>
    <div id="output"></div>
    <script>
        document.getElementById('form').addEventListener('submit', async function (event) {
            event.preventDefault();
            const output = document.getElementById('output');
            const form = new FormData(event.target);
            if (!form.get('image') || !form.get('image').name) {
                alert('Please select an image to upload.');
                return;
            }
            output.textContent = 'Working...';
            const response = await fetch('/api/convert', { method: 'POST', body: form });
            const data = await response.json();
            if (!response.ok) {
                output.textContent = data.error;
                return;
            }
            output.innerHTML = '';
            const explanation = document.createElement('p');
            explanation.className = 'command-explanation';
            explanation.textContent = 'To import your map on the test server, copy this command and paste it into the chat. On the main server, you\'ll have to ask an admin.';
            const command = document.createElement('p');
            command.className = 'command-text';
            command.textContent = data.command;
            const caption = document.createElement('p');
            caption.className = 'command-explanation';
            caption.textContent = 'This is what your map will look like in Minecraft:';
            const img = document.createElement('img');
            img.id = 'preview';
            img.src = data.preview;
            output.append(explanation, command, caption, img);
        });
    </script>
</body>
</html>
`
